package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// chatCmdFallback mirrors the widget's fixed message for failed sends.
const chatCmdFallback = "Sorry, I'm having trouble answering right now. Please try again in a moment."

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Send one message to the real-estate agent",
	Long: `Send a single message to the real-estate agent and print the reply.

For a conversation, use the chat widget on the landing page
("realty browse", then press c).

Examples:
  realty chat "What condos do you have under a million?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")

	resp, err := apiClient.SendChatMessage(context.Background(), message)
	if err != nil {
		return fmt.Errorf("send chat message: %w", err)
	}

	if isJSON() {
		return printJSON(resp)
	}

	if !resp.Success {
		logger.Warn("agent reported failure", "agent_error", resp.Error)
		fmt.Println(chatCmdFallback)
		return nil
	}

	fmt.Println(resp.Response)
	return nil
}
