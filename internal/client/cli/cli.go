package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/worklane/worklane-cli/internal/client/api"
	"github.com/worklane/worklane-cli/internal/client/iocli"
	"github.com/worklane/worklane-cli/internal/client/session"
	"github.com/worklane/worklane-cli/internal/client/storage"
)

// Cli wires the terminal commands to the session controller and the API
// client. It is the CLI counterpart of the page layer: every command passes
// through the route-access guards before touching the API.
type Cli struct {
	session *session.Session
	api     *api.Client
	creds   storage.CredentialStore
	io      iocli.IO
	log     zerolog.Logger
}

func New(sess *session.Session, apiClient *api.Client, creds storage.CredentialStore, io iocli.IO, log zerolog.Logger) *Cli {
	return &Cli{
		session: sess,
		api:     apiClient,
		creds:   creds,
		io:      io,
		log:     log,
	}
}

// Run dispatches a command. Returned errors are user-facing.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx)
	case "register":
		return c.runRegister(ctx)
	case "activate":
		return c.runActivate(ctx, args)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "dashboard":
		return c.runDashboard(ctx)
	case "projects":
		return c.runProjects(ctx, args)
	case "proposals":
		return c.runProposals(ctx, args)
	case "profile":
		return c.runProfile(ctx, args)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func PrintUsage(io iocli.IO) {
	io.Println("Worklane Client")
	io.Println()
	io.Println("Usage:")
	io.Println("  worklane [OPTIONS] COMMAND [ARGS]")
	io.Println()
	io.Println("Options:")
	io.Println("  --version              Show version information")
	io.Println("  --server URL           API base URL (overrides WORKLANE_API_URL)")
	io.Println("  --db PATH              Path to local database (overrides WORKLANE_DB)")
	io.Println()
	io.Println("Commands:")
	io.Println("  login                  Log in to Worklane")
	io.Println("  register               Create a new account")
	io.Println("  activate <token>       Activate an account with the emailed token")
	io.Println("  logout                 Log out and clear the local session")
	io.Println("  status                 Show session status")
	io.Println("  dashboard              Show your dashboard")
	io.Println("  projects list          Browse project postings (--page, --search, --status)")
	io.Println("  projects view <id>     Show one project")
	io.Println("  projects create        Post a new project (clients)")
	io.Println("  proposals list         List your proposals (freelancers)")
	io.Println("  proposals send <id>    Submit a proposal for a project")
	io.Println("  proposals attach <id> <file>")
	io.Println("                         Attach a document to a proposal")
	io.Println("  profile show           Show your freelance profile")
	io.Println("  profile setup          Create your freelance profile (onboarding)")
	io.Println("  profile avatar <file>  Upload a profile avatar")
	io.Println("  profile resume <file>  Upload a resume document")
	io.Println()
	io.Println("Examples:")
	io.Println("  worklane login")
	io.Println("  worklane projects list --search golang --status OPEN")
	io.Println("  worklane proposals send 42")
}
