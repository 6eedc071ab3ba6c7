package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/yungbote/neuroadapt-backend/internal/app"
	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
)

type idList []string

func (l *idList) String() string { return strings.Join(*l, ",") }
func (l *idList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v != "" {
		*l = append(*l, v)
	}
	return nil
}

func main() {
	var users idList
	var dryRun bool
	var limit int
	flag.Var(&users, "user", "user_id to reclassify (repeatable)")
	flag.BoolVar(&dryRun, "dry-run", false, "print decisions without persisting them")
	flag.IntVar(&limit, "limit", 0, "limit number of users processed")
	flag.Parse()

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	dbc := dbctx.Context{Ctx: context.Background()}

	var ids []uuid.UUID
	if len(users) > 0 {
		for _, s := range users {
			id, err := uuid.Parse(s)
			if err != nil || id == uuid.Nil {
				fmt.Printf("skipping invalid user_id %q\n", s)
				continue
			}
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			fmt.Println("no valid user_id values provided")
			return
		}
		if limit > 0 && len(ids) > limit {
			ids = ids[:limit]
		}
	} else {
		ids, err = application.Repos.User.ListIDs(dbc, limit)
		if err != nil {
			fmt.Printf("list users: %v\n", err)
			os.Exit(1)
		}
	}

	changed, failed := 0, 0
	for _, id := range ids {
		res, err := application.Services.Assessment.ReclassifyUser(dbc, id, types.TriggerBackfill, dryRun)
		if err != nil {
			failed++
			fmt.Printf("reclassify failed for user %s: %v\n", id, err)
			continue
		}
		prefix := ""
		if dryRun {
			prefix = "[dry-run] "
		}
		fmt.Printf("%suser_id=%s preset=%s margin=%.2f\n", prefix, id, res.Preset, res.Margin)
		changed++
	}

	fmt.Printf("done; reclassified=%d failed=%d\n", changed, failed)
	if failed > 0 {
		application.Close()
		os.Exit(1)
	}
}
