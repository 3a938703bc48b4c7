package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/taskflow/taskflow/internal/client/api"
	"github.com/taskflow/taskflow/internal/client/cli"
	"github.com/taskflow/taskflow/internal/client/config"
)

const usage = `usage: taskflow [-s server] [-f token-file] <command> [args]

commands:
  register          create an account and log in
  login             log in and cache the token
  list              list your tasks
  add <title>       add a task
  done <id>         mark a task completed
  rm <id>           delete a task
`

func main() {
	cfg := config.LoadConfig()

	args := commandArgs(os.Args[1:])
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	client := api.New(cfg.ServerURL)
	ctx := context.Background()

	if err := run(ctx, cfg, client, args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// commandArgs strips the config flags (and their values) so only the
// subcommand and its arguments remain.
func commandArgs(args []string) []string {
	out := []string{}
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "-s" || a == "-f" {
			i++
			continue
		}
		if strings.HasPrefix(a, "-s=") || strings.HasPrefix(a, "-f=") {
			continue
		}
		out = append(out, a)
	}
	return out
}

func run(ctx context.Context, cfg *config.Config, client *api.Client, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "register":
		return doRegister(ctx, cfg, client)
	case "login":
		return doLogin(ctx, cfg, client)
	}

	// Everything else needs a cached token.
	token, err := cli.LoadToken(cfg.TokenFile)
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("not logged in; run `taskflow login` first")
	}
	client.SetToken(token)

	switch cmd {
	case "list":
		return doList(ctx, client)
	case "add":
		if len(rest) == 0 {
			return fmt.Errorf("add: missing title")
		}
		return doAdd(ctx, client, strings.Join(rest, " "))
	case "done":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		_, err = client.CompleteTask(ctx, id)
		return err
	case "rm":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		return client.DeleteTask(ctx, id)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseID(rest []string) (int64, error) {
	if len(rest) != 1 {
		return 0, fmt.Errorf("expected a task id")
	}
	id, err := strconv.ParseInt(rest[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", rest[0])
	}
	return id, nil
}

func doRegister(ctx context.Context, cfg *config.Config, client *api.Client) error {
	reader := bufio.NewReader(os.Stdin)

	name, err := cli.GetSimpleText(reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := cli.GetSimpleText(reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := cli.GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := client.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	if err := cli.SaveToken(cfg.TokenFile, res.Token); err != nil {
		return err
	}
	fmt.Printf("registered %s (%s)\n", res.User.Name, res.User.Email)
	return nil
}

func doLogin(ctx context.Context, cfg *config.Config, client *api.Client) error {
	reader := bufio.NewReader(os.Stdin)

	email, err := cli.GetSimpleText(reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := cli.GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	res, err := client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := cli.SaveToken(cfg.TokenFile, res.Token); err != nil {
		return err
	}
	fmt.Printf("logged in as %s\n", res.User.Email)
	return nil
}

func doList(ctx context.Context, client *api.Client) error {
	tasks, err := client.ListTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("no tasks")
		return nil
	}
	for _, t := range tasks {
		mark := " "
		if t.IsCompleted {
			mark = "x"
		}
		fmt.Printf("[%s] %d  %s\n", mark, t.ID, t.Title)
	}
	return nil
}

func doAdd(ctx context.Context, client *api.Client, title string) error {
	task, err := client.CreateTask(ctx, title, nil)
	if err != nil {
		return err
	}
	fmt.Printf("added task %d\n", task.ID)
	return nil
}
