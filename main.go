package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AyushAgarwal15/devtinder-cli/commands"
	"github.com/AyushAgarwal15/devtinder-cli/internal/config"
)

func clearScreen() {
	switch runtime.GOOS {
	case "windows":
		cmd := exec.Command("cmd", "/c", "cls")
		cmd.Stdout = os.Stdout
		cmd.Run()
	default: // Linux, macOS
		cmd := exec.Command("clear")
		cmd.Stdout = os.Stdout
		cmd.Run()
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func printHelp() {
	fmt.Println("\n=== DevTinder CLI Help ===")
	fmt.Println("\nAccount:")
	fmt.Printf("%-15s : %s\n", "register", "Create a new account")
	fmt.Printf("%-15s : %s\n", "login", "Sign in (usage: login --email:<email> --password:<pass>)")
	fmt.Printf("%-15s : %s\n", "logout", "Sign out and clear local state")
	fmt.Printf("%-15s : %s\n", "profile", "View your profile; 'profile edit' to update it")

	fmt.Println("\nNetworking:")
	fmt.Printf("%-15s : %s\n", "feed", "Swipe through candidate developers")
	fmt.Printf("%-15s : %s\n", "connections", "List matches; 'connections remove --user:<id>' to unfriend")
	fmt.Printf("%-15s : %s\n", "requests", "View pending connection requests")
	fmt.Printf("%-15s : %s\n", "respond", "Accept or reject a request (usage: respond --request:<id>)")

	fmt.Println("\nMessaging:")
	fmt.Printf("%-15s : %s\n", "chat", "Open a chat (usage: chat --user:<id>)")
	fmt.Printf("%-15s : %s\n", "notifications", "List message notifications; 'notifications read' clears the badge")
	fmt.Printf("%-15s : %s\n", "badges", "Show request and unread-message counters")

	fmt.Println("\nSystem:")
	fmt.Printf("%-15s : %s\n", "clear", "Clear the terminal screen")
	fmt.Printf("%-15s : %s\n", "help", "Show this help message")
	fmt.Printf("%-15s : %s\n", "exit", "Quit the application")

	fmt.Println("\nNote: most commands require you to be logged in first.")
}

func newExecutor(app *commands.App) func(string) {
	return func(input string) {
		input = strings.TrimSpace(input)
		if input == "" {
			return
		}

		args := strings.Split(input, " ")
		cmd := strings.ToLower(args[0])
		cmdArgs := args[1:]

		switch cmd {
		case "register":
			app.Register(cmdArgs)
		case "login":
			app.Login(cmdArgs)
		case "logout":
			app.Logout()
		case "profile":
			app.Profile(cmdArgs)
		case "feed":
			app.Feed(cmdArgs)
		case "connections":
			app.Connections(cmdArgs)
		case "requests":
			app.Requests(cmdArgs)
		case "respond":
			app.Respond(cmdArgs)
		case "chat":
			app.Chat(cmdArgs)
		case "notifications":
			app.Notifications(cmdArgs)
		case "badges":
			app.Badges()
		case "help":
			printHelp()
		case "clear":
			clearScreen()
		case "exit":
			app.Exit()
			os.Exit(0)
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func completer(d prompt.Document) []prompt.Suggest {
	suggestions := []prompt.Suggest{
		{Text: "login", Description: "Sign in to your account"},
		{Text: "register", Description: "Create a new account"},
		{Text: "feed", Description: "Swipe through candidate developers"},
		{Text: "connections", Description: "List your matches"},
		{Text: "requests", Description: "View pending connection requests"},
		{Text: "respond", Description: "Accept or reject a request"},
		{Text: "chat", Description: "Open a chat with a connection"},
		{Text: "notifications", Description: "List message notifications"},
		{Text: "profile", Description: "View or edit your profile"},
		{Text: "badges", Description: "Show unread counters"},
		{Text: "logout", Description: "Sign out"},
		{Text: "help", Description: "Show available commands"},
		{Text: "exit", Description: "Quit"},
	}
	return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
}

func main() {
	godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	setupLogger(cfg.Log.Level)

	app := commands.NewApp(cfg)

	fmt.Println("Welcome to DevTinder")
	fmt.Println("Type 'help' to see available commands")

	p := prompt.New(
		newExecutor(app),
		completer,
		prompt.OptionPrefix("> "),
		prompt.OptionTitle("DevTinder CLI"),
		prompt.OptionHistory([]string{}),
	)
	p.Run()
}
