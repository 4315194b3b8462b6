// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for the finassist CLI.
//
// Handles the "finassist chat" command (and the bare "finassist"
// invocation), an interactive REPL for asking financial questions.
//
// Command: chat
// Short:   Start an interactive chat session
//
// Examples:
//   finassist chat                  Start interactive chat
//   finassist chat --no-llm         Deterministic answers only
//
// Interactive Commands (during chat):
//   set key: value      Store a fact ("set monthly_income: $5000")
//   show data           List stored facts
//   /help, /h           Show available commands
//   /data               List stored facts
//   /clear-data         Delete all stored facts
//   /history            Show this session's conversation
//   /quit, /q           Exit chat
//   Ctrl+D              Exit chat

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"

	"github.com/jeranaias/finassist-tui/internal/assistant"
	"github.com/jeranaias/finassist-tui/internal/config"
	"github.com/jeranaias/finassist-tui/internal/facts"
	"github.com/jeranaias/finassist-tui/internal/model"
	"github.com/jeranaias/finassist-tui/internal/storage"
	"github.com/jeranaias/finassist-tui/internal/util"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	cli := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with history navigation.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}

	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatSession holds the state for an interactive chat session.
type ChatSession struct {
	Assistant    *assistant.Assistant
	Conversation *model.Conversation
	Transcripts  *storage.TranscriptStore

	Config *config.Config
	Quiet  bool

	StartTime time.Time
	Questions int

	InputCLI *ChatCLI
}

// NewChatSession creates a chat session from parsed arguments.
func NewChatSession(args Args) (*ChatSession, func()) {
	cfg := config.Global()

	asst, closer := buildAssistant(cfg, args)

	// Transcript persistence is best-effort: a failure means the session
	// just isn't saved on exit.
	var transcripts *storage.TranscriptStore
	if dir, err := config.ConfigDir(); err == nil {
		transcripts, _ = storage.NewTranscriptStore(filepath.Join(dir, "transcripts"), cfg.Storage.MaxConversations)
	}

	return &ChatSession{
		Assistant:    asst,
		Conversation: model.NewConversation(),
		Transcripts:  transcripts,
		Config:       cfg,
		Quiet:        args.Quiet,
		StartTime:    time.Now(),
		InputCLI:     NewChatCLI(),
	}, closer
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChatCommand handles the "chat" command.
func HandleChatCommand(args Args) error {
	session, closer := NewChatSession(args)
	defer closer()
	defer session.InputCLI.Close()

	if !session.Quiet {
		printWelcome(session)
	}

	ctx := context.Background()

	for {
		input, err := session.InputCLI.ReadInput(promptStyle.Render("finassist> "))
		if err != nil {
			// Ctrl+C (ErrPromptAborted) and Ctrl+D both exit gracefully.
			fmt.Println()
			finishSession(session)
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			keepGoing, err := handleSlashCommand(input, session)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("[Error]"), err)
			}
			if !keepGoing {
				finishSession(session)
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			finishSession(session)
			return nil
		}

		// "set key: value" and "show data" are session surfaces handled
		// before dispatch; they never reach the assistant.
		if strings.HasPrefix(strings.ToLower(input), "set ") {
			handleSetCommand(session, input[4:])
			continue
		}
		if strings.EqualFold(input, "show data") {
			printData(session.Assistant.Facts())
			continue
		}

		processQuestion(ctx, session, input)
	}
}

// processQuestion runs one question through the assistant and records the
// exchange in the transcript.
func processQuestion(ctx context.Context, session *ChatSession, input string) {
	session.Conversation.Append(model.RoleUser, input)

	answer := session.Assistant.Ask(ctx, input)

	fmt.Println()
	displayAnswer(answer, session.Config)
	fmt.Println()

	session.Conversation.Append(model.RoleAssistant, answer.Text)
	session.Questions++
}

// handleSetCommand stores a fact from a "set key: value" command body.
func handleSetCommand(session *ChatSession, body string) {
	key, value, err := facts.ParseSetCommand(body)
	if err != nil {
		fmt.Printf("%s Invalid format! Use: set key: value\n", ErrorStyle.Render("[Error]"))
		return
	}

	if err := session.Assistant.Facts().Set(key, value); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("[Error]"), err)
		return
	}
	fmt.Printf("%s Saved: %s = %s\n", SuccessStyle.Render("[OK]"), key, value)
}

// printData lists all stored facts.
func printData(store facts.Store) {
	if store.Len() == 0 {
		fmt.Println(infoStyle.Render("No financial data has been set yet."))
		return
	}

	fmt.Println()
	fmt.Println(TitleStyle.Render("Your Financial Data"))
	fmt.Print(facts.Render(store))
	fmt.Println()
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand processes slash commands.
// Returns (keepGoing, error) where keepGoing=false means exit.
func handleSlashCommand(cmd string, session *ChatSession) (bool, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return true, nil
	}

	switch strings.ToLower(parts[0]) {
	case "/help", "/h", "/?", "/":
		printHelp()
		return true, nil

	case "/data", "/d":
		printData(session.Assistant.Facts())
		return true, nil

	case "/clear-data":
		if err := session.Assistant.Facts().Clear(); err != nil {
			return true, err
		}
		fmt.Println(commandStyle.Render("[All financial data cleared]"))
		return true, nil

	case "/history":
		printHistory(session)
		return true, nil

	case "/quit", "/q", "/exit":
		return false, nil

	default:
		return true, fmt.Errorf("unknown command: %s (type /help for commands)", parts[0])
	}
}

// =============================================================================
// DISPLAY FUNCTIONS
// =============================================================================

// printWelcome prints the welcome banner.
func printWelcome(session *ChatSession) {
	fmt.Println()
	fmt.Println(welcomeStyle.Render("finassist interactive chat"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 30)))
	fmt.Println(infoStyle.Render("Ask financial questions in plain English:"))
	fmt.Println(infoStyle.Render(`  - "What's the price of AAPL?"`))
	fmt.Println(infoStyle.Render(`  - "How much will I pay for a $250,000 loan at 4.5% for 30 years?"`))
	fmt.Println(infoStyle.Render(`  - "If I invest $10,000 at 7% return for 20 years, how much will I have?"`))
	fmt.Println()
	fmt.Printf("%s %s\n",
		infoStyle.Render("Store your data with"),
		commandStyle.Render("set monthly_income: $5000"))

	if session.Config.Assistant.LLMFallback {
		fmt.Printf("%s %s\n",
			infoStyle.Render("Fallback model:"),
			commandStyle.Render(session.Config.Local.OllamaModel))
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Type your question and press Enter. Commands: /help, /quit"))
	fmt.Println()
}

// printHelp prints available interactive commands.
func printHelp() {
	fmt.Println()
	fmt.Println(TitleStyle.Render("Available Commands"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()

	commands := []struct {
		cmd  string
		desc string
	}{
		{"set key: value", "Store a fact (e.g. set monthly_income: $5000)"},
		{"show data", "List stored facts"},
		{"/help, /h", "Show this help"},
		{"/data, /d", "List stored facts"},
		{"/clear-data", "Delete all stored facts"},
		{"/history", "Show this session's conversation"},
		{"/quit, /q", "Exit chat"},
	}

	for _, c := range commands {
		fmt.Printf("  %s  %s\n",
			commandStyle.Render(fmt.Sprintf("%-15s", c.cmd)),
			infoStyle.Render(c.desc))
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Tip: Ctrl+D exits and saves the session transcript"))
	fmt.Println()
}

// printHistory prints this session's conversation.
func printHistory(session *ChatSession) {
	if session.Conversation.Len() == 0 {
		fmt.Println(infoStyle.Render("[No messages yet]"))
		return
	}

	fmt.Println()
	fmt.Println(TitleStyle.Render("Conversation History"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 25)))
	fmt.Println()

	for i, msg := range session.Conversation.Messages {
		role := msg.Role.DisplayName()
		if msg.Role == model.RoleUser {
			role = promptStyle.Render(role)
		} else {
			role = welcomeStyle.Render(role)
		}

		content := strings.ReplaceAll(msg.Content, "\n", " ")
		fmt.Printf("  %d. %s: %s\n", i+1, role, util.TruncateRunes(content, 100))
	}

	fmt.Println()
}

// finishSession saves the transcript and prints the exit summary.
func finishSession(session *ChatSession) {
	if session.Questions == 0 {
		fmt.Println(infoStyle.Render("Goodbye!"))
		return
	}

	if session.Transcripts != nil {
		if _, err := session.Transcripts.Save(session.Conversation); err != nil {
			fmt.Fprintf(os.Stderr, "%s failed to save transcript: %v\n",
				WarningStyle.Render("[Warning]"), err)
		}
	}

	elapsed := time.Since(session.StartTime).Round(time.Second)

	fmt.Println()
	fmt.Println(TitleStyle.Render("Session Summary"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 15)))
	fmt.Printf("  %s %d\n", infoStyle.Render("Questions:"), session.Questions)
	fmt.Printf("  %s %d\n", infoStyle.Render("Stored facts:"), session.Assistant.Facts().Len())
	fmt.Printf("  %s %s\n", infoStyle.Render("Duration:"), elapsed.String())
	fmt.Println()
	fmt.Println(infoStyle.Render("Goodbye!"))
}
