// trekctl is the operator tool for inspecting and manipulating the
// engine's persisted state. The debug reset lives here, deliberately off
// the serving surface.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/trekline/server/pkg/bootstrap"
	"github.com/trekline/server/pkg/infrastructure/oauth"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: trekctl <command>

commands:
  state      print the progress snapshot and sync state
  sync       run one sync against the activity feed
  reset      clear completions and re-arm the active route from zero
  connect    store Strava credentials
             -access-token TOKEN -refresh-token TOKEN [-expires-at UNIX]`)
	os.Exit(2)
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
	}

	ctx := context.Background()
	svc, err := bootstrap.NewService(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}
	defer svc.Close()

	switch os.Args[1] {
	case "state":
		snap, err := svc.Tracker.Progress(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "state failed: %v\n", err)
			os.Exit(1)
		}
		out, _ := json.MarshalIndent(snap, "", "  ")
		fmt.Println(string(out))

	case "sync":
		res := svc.Tracker.Sync(ctx)
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "sync failed (%s): %s\n", res.Err.Category, res.Err.UserMessage())
			os.Exit(1)
		}
		fmt.Printf("synced, gained %.2f miles\n", res.GainMiles)

	case "reset":
		if err := svc.Tracker.DebugReset(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "reset failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("active route re-armed from zero")

	case "connect":
		fs := flag.NewFlagSet("connect", flag.ExitOnError)
		accessToken := fs.String("access-token", "", "Strava access token")
		refreshToken := fs.String("refresh-token", "", "Strava refresh token")
		expiresAt := fs.Int64("expires-at", 0, "access token expiry (unix seconds)")
		fs.Parse(os.Args[2:])

		if *accessToken == "" || *refreshToken == "" {
			fmt.Fprintln(os.Stderr, "connect requires -access-token and -refresh-token")
			os.Exit(2)
		}

		tok := &oauth.Token{
			AccessToken:  *accessToken,
			RefreshToken: *refreshToken,
		}
		if *expiresAt > 0 {
			tok.Expiry = time.Unix(*expiresAt, 0)
		}
		if err := svc.Tokens.Save(ctx, tok); err != nil {
			fmt.Fprintf(os.Stderr, "connect failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("credentials stored")

	default:
		usage()
	}
}
