package main

import (
	"github.com/apex/log"
	_ "github.com/joho/godotenv/autoload"

	// commands
	_ "github.com/opencivics/congress/internal/cli/bills"
	_ "github.com/opencivics/congress/internal/cli/committees"
	_ "github.com/opencivics/congress/internal/cli/members"
	_ "github.com/opencivics/congress/internal/cli/nominees"
	_ "github.com/opencivics/congress/internal/cli/schedule"
	_ "github.com/opencivics/congress/internal/cli/states"
	_ "github.com/opencivics/congress/internal/cli/version"
	_ "github.com/opencivics/congress/internal/cli/votes"

	"github.com/opencivics/congress/internal/cli/app"
)

func main() {
	err := app.Run()
	if err == nil {
		return
	}
	log.WithError(err).Fatal("main exit")
}
