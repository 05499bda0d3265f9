/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/josephgoksu/RepoWing/agent"
	"github.com/josephgoksu/RepoWing/llm"
	"github.com/josephgoksu/RepoWing/tools"
	"github.com/spf13/cobra"
)

var agentCmd = &cobra.Command{
	Use:          "agent [message]",
	Short:        "Chat with the repository analysis agent",
	SilenceUsage: true,
	Long: `Run the GitHub QnA agent: a Groq-hosted model with access to the
repository analysis tools. The agent decides which tools to call to
answer your question.

With a message argument, answers once and exits. Without one, starts an
interactive session; type "exit" or "quit" to leave.

Requires both POTPIE_API_KEY and GROQ_API_KEY.

Examples:
  repowing agent "analyze the repository golang/go"
  repowing agent`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAgent,
}

func init() {
	rootCmd.AddCommand(agentCmd)
}

func runAgent(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if !HasAnalysisCredentials() {
		return fmt.Errorf("agent requires both POTPIE_API_KEY and GROQ_API_KEY to be set")
	}

	tb, err := newToolbox()
	if err != nil {
		return err
	}

	chatModel, err := llm.NewChatModel(cmd.Context(), cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to create chat model: %w", err)
	}

	a := agent.New(chatModel, tools.EinoTools(tb))
	a.SetVerbose(cfg.Verbose)
	a.SetMaxIterations(cfg.LLM.MaxIterations)

	if len(args) == 1 {
		answer, err := a.Run(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(answer)
		return nil
	}

	fmt.Println("Repository analysis agent. Type 'exit' or 'quit' to leave.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter your message: ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			return nil
		}

		answer, err := a.Run(cmd.Context(), message)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		fmt.Println(answer)
	}
}
