package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"instant-lab/domain/instant"
	"instant-lab/repositories"
	"instant-lab/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

const usage = `usage: instant-lab <command> [args]

commands:
  seed-member <uid> [displayName]
  create      <uid> <title> [-desc s] [-start rfc3339] [-end rfc3339]
  events      <uid>
  get         <uid> <eventID>
  post        <uid> <eventID> <message>
  list        <uid> <eventID>
  info        <uid> <eventID> <messageID>
  reply       <uid> <eventID> <messageID> <reply> [-author s] [-photo url]
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the composition root: config, logger, Badger, repositories and
// the service, then dispatches one CLI verb. Errors flow back here so every
// defer (database cleanup included) executes before the process exits.
func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Repositories & Service
	members := repositories.NewMemberRepository(db, log)
	events := repositories.NewEventRepository(db, log, config.TxnMaxAttempts)
	messages := repositories.NewMessageRepository(db, log, nil, config.TxnMaxAttempts)
	replies := repositories.NewReplyRepository(db, log, nil, config.TxnMaxAttempts)
	service := services.NewInstantEventService(events, messages, replies, nil)

	// 4. Verb dispatch
	return dispatch(service, members, args)
}

func dispatch(service services.IInstantEventService, members repositories.IMemberRepository, args []string) error {
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "seed-member":
		if len(rest) < 1 {
			return fmt.Errorf("seed-member: uid required")
		}
		member := instant.Member{UID: rest[0]}
		if len(rest) > 1 {
			member.DisplayName = lo.ToPtr(rest[1])
		}
		return members.Seed(member)

	case "create":
		fs := flag.NewFlagSet("create", flag.ContinueOnError)
		desc := fs.String("desc", "", "event description")
		start := fs.String("start", "", "start date, RFC 3339")
		end := fs.String("end", "", "end date, RFC 3339")
		if len(rest) < 2 {
			return fmt.Errorf("create: uid and title required")
		}
		if err := fs.Parse(rest[2:]); err != nil {
			return err
		}
		req := services.CreateEventRequest{MemberID: rest[0], Title: rest[1]}
		if *desc != "" {
			req.Desc = desc
		}
		if *start != "" {
			req.StartDate = start
		}
		if *end != "" {
			req.EndDate = end
		}
		id, err := service.CreateEvent(req)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil

	case "events":
		if len(rest) < 1 {
			return fmt.Errorf("events: uid required")
		}
		events, err := service.ListEvents(rest[0])
		if err != nil {
			return err
		}
		return printJSON(events)

	case "get":
		if len(rest) < 2 {
			return fmt.Errorf("get: uid and eventID required")
		}
		event, err := service.GetEvent(rest[0], rest[1])
		if err != nil {
			return err
		}
		return printJSON(event)

	case "post":
		if len(rest) < 3 {
			return fmt.Errorf("post: uid, eventID and message required")
		}
		id, err := service.PostMessage(rest[0], rest[1], rest[2])
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil

	case "list":
		if len(rest) < 2 {
			return fmt.Errorf("list: uid and eventID required")
		}
		messages, err := service.ListMessages(rest[0], rest[1])
		if err != nil {
			return err
		}
		return printJSON(messages)

	case "info":
		if len(rest) < 3 {
			return fmt.Errorf("info: uid, eventID and messageID required")
		}
		message, err := service.GetMessage(rest[0], rest[1], rest[2])
		if err != nil {
			return err
		}
		return printJSON(message)

	case "reply":
		fs := flag.NewFlagSet("reply", flag.ContinueOnError)
		author := fs.String("author", "", "reply author display name")
		photo := fs.String("photo", "", "reply author photo URL")
		if len(rest) < 4 {
			return fmt.Errorf("reply: uid, eventID, messageID and reply required")
		}
		if err := fs.Parse(rest[4:]); err != nil {
			return err
		}
		req := services.PostReplyRequest{
			MemberID:  rest[0],
			EventID:   rest[1],
			MessageID: rest[2],
			Reply:     rest[3],
		}
		if *author != "" {
			req.Author = &instant.Author{DisplayName: *author}
			if *photo != "" {
				req.Author.PhotoURL = photo
			}
		}
		return service.PostReply(req)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
