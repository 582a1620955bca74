// Package main provides an interactive console client for the academy QA
// bot. It reads questions from stdin and prints the bot's replies, useful
// for trying the engine locally without running the HTTP server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/garyellow/academy-qabot-go/internal/data"
	"github.com/garyellow/academy-qabot-go/internal/knowledge"
	"github.com/garyellow/academy-qabot-go/internal/logger"
	"github.com/garyellow/academy-qabot-go/internal/qa"
	"github.com/garyellow/academy-qabot-go/internal/stringutil"
)

const (
	greeting = "Welcome to the Academy QA Bot! Ask me about courses, staff, or schedules.\n" +
		"Type 'quit' to exit."
	goodbye    = "Bot: Goodbye! Have a great day!"
	retryReply = "Sorry, something went wrong. Please try again."
)

func main() {
	log := logger.NewWithWriter(os.Getenv("LOG_LEVEL"), io.Discard)
	if os.Getenv("LOG_LEVEL") == "debug" {
		log = logger.New("debug")
	}

	store, err := knowledge.NewStore(data.Catalog())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to build knowledge store: %v\n", err)
		os.Exit(1)
	}
	engine := qa.NewEngine(store, nil, log)

	run(os.Stdin, os.Stdout, engine)
}

func run(in io.Reader, out io.Writer, engine *qa.Engine) {
	ctx := context.Background()
	scanner := bufio.NewScanner(in)

	_, _ = fmt.Fprintln(out, greeting)
	for {
		_, _ = fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(out)
			_, _ = fmt.Fprintln(out, goodbye)
			return
		}

		line := scanner.Text()
		switch stringutil.NormalizeID(line) {
		case "quit", "exit", "bye":
			_, _ = fmt.Fprintln(out, goodbye)
			return
		}

		_, _ = fmt.Fprintf(out, "Bot: %s\n", answer(ctx, engine, line))
	}
}

// answer shields the console loop from engine panics so a single bad query
// never kills the session.
func answer(ctx context.Context, engine *qa.Engine, query string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			reply = retryReply
		}
	}()
	return engine.Process(ctx, query)
}
