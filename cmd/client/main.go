// Command client is a small CLI for the noteboard server. It covers the full
// REST surface: account registration and login, note CRUD, and the admin
// operations.
//
// Usage:
//
//	client -a localhost:8080 register -login ann -password secret -name Ann
//	client -a localhost:8080 login -login ann -password secret
//	client -a localhost:8080 -token $TOKEN create -title "shopping" -content "milk" -public
//	client -a localhost:8080 -token $TOKEN list
//	client -a localhost:8080 -token $TOKEN get -id <uuid>
//	client -a localhost:8080 -token $TOKEN admin-delete -id <uuid>
//
// Authenticated commands read the bearer token from the -token flag or the
// NOTEBOARD_TOKEN environment variable. Register and login print the issued
// token to stdout so it can be exported for subsequent calls.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dkordic/noteboard/internal/client"
	"github.com/dkordic/noteboard/internal/logger"
	"github.com/dkordic/noteboard/models"
	"github.com/google/uuid"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("noteboard-client")

	if err := run(log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(log *logger.Logger) error {
	address := flag.String("a", "localhost:8080", "server address")
	timeout := flag.Duration("t", 30*time.Second, "request timeout")
	token := flag.String("token", os.Getenv("NOTEBOARD_TOKEN"), "bearer token for authenticated commands")
	version := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *version {
		printBuildInfo()
		return nil
	}

	args := flag.Args()
	if len(args) == 0 {
		return fmt.Errorf("no command given (register, login, create, list, my, get, update, delete, admin-list, admin-delete)")
	}

	c, err := client.NewClient(*address, *timeout, log)
	if err != nil {
		return err
	}
	c.SetToken(*token)

	ctx := context.Background()

	switch cmd, cmdArgs := args[0], args[1:]; cmd {
	case "register":
		return register(ctx, c, cmdArgs)
	case "login":
		return login(ctx, c, cmdArgs)
	case "create":
		return create(ctx, c, cmdArgs)
	case "list":
		notes, err := c.Notes(ctx)
		if err != nil {
			return err
		}
		return printJSON(notes)
	case "my":
		notes, err := c.MyNotes(ctx)
		if err != nil {
			return err
		}
		return printJSON(notes)
	case "get":
		noteID, err := parseNoteID(cmd, cmdArgs)
		if err != nil {
			return err
		}
		note, err := c.NoteByID(ctx, noteID)
		if err != nil {
			return err
		}
		return printJSON(note)
	case "update":
		return update(ctx, c, cmdArgs)
	case "delete":
		noteID, err := parseNoteID(cmd, cmdArgs)
		if err != nil {
			return err
		}
		return c.DeleteNote(ctx, noteID)
	case "admin-list":
		notes, err := c.AdminNotes(ctx)
		if err != nil {
			return err
		}
		return printJSON(notes)
	case "admin-delete":
		noteID, err := parseNoteID(cmd, cmdArgs)
		if err != nil {
			return err
		}
		return c.AdminDeleteNote(ctx, noteID)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func register(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	login := fs.String("login", "", "account login")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	profile, err := c.Register(ctx, models.RegisterRequest{Login: *login, Password: *password, Name: *name})
	if err != nil {
		return err
	}

	if err := printJSON(profile); err != nil {
		return err
	}
	fmt.Println(c.Token())
	return nil
}

func login(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	loginName := fs.String("login", "", "account login")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.Login(ctx, models.LoginRequest{Login: *loginName, Password: *password}); err != nil {
		return err
	}

	fmt.Println(c.Token())
	return nil
}

func create(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	title := fs.String("title", "", "note title")
	content := fs.String("content", "", "note content")
	public := fs.Bool("public", false, "make the note readable by every authenticated user")
	if err := fs.Parse(args); err != nil {
		return err
	}

	created, err := c.CreateNote(ctx, models.CreateNoteRequest{Title: *title, Content: *content, IsPublic: *public})
	if err != nil {
		return err
	}

	return printJSON(created)
}

func update(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	id := fs.String("id", "", "note id")
	title := fs.String("title", "", "new title (unchanged when omitted)")
	content := fs.String("content", "", "new content (unchanged when omitted)")
	public := fs.String("public", "", "new visibility: true or false (unchanged when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	noteID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid note id %q: %w", *id, err)
	}

	var upd models.NoteUpdate
	if *title != "" {
		upd.Title = title
	}
	if *content != "" {
		upd.Content = content
	}
	if *public != "" {
		isPublic := *public == "true"
		upd.IsPublic = &isPublic
	}

	updated, err := c.UpdateNote(ctx, noteID, upd)
	if err != nil {
		return err
	}

	return printJSON(updated)
}

func parseNoteID(cmd string, args []string) (uuid.UUID, error) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	id := fs.String("id", "", "note id")
	if err := fs.Parse(args); err != nil {
		return uuid.Nil, err
	}

	noteID, err := uuid.Parse(*id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid note id %q: %w", *id, err)
	}
	return noteID, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
