package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/worklane/worklane-cli/internal/client/guard"
	"github.com/worklane/worklane-cli/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: worklane profile <show|setup|avatar|resume> [args]")
	}

	switch args[0] {
	case "show":
		return c.runProfileShow(ctx)
	case "setup":
		return c.runProfileSetup(ctx)
	case "avatar":
		return c.runProfileUpload(ctx, "avatar", args[1:])
	case "resume":
		return c.runProfileUpload(ctx, "resume", args[1:])
	default:
		return fmt.Errorf("unknown profile subcommand: %s", args[0])
	}
}

func (c *Cli) runProfileShow(ctx context.Context) error {
	if !c.gate(api.RoleProvider) {
		return nil
	}

	profile, err := c.api.FreelanceProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	c.title(profile.Headline)
	c.field("Hourly rate", fmt.Sprintf("%.2f", profile.HourlyRate))
	c.field("Skills", strings.Join(profile.Skills, ", "))
	if profile.AvatarURL != "" {
		c.field("Avatar", profile.AvatarURL)
	}
	if profile.ResumeURL != "" {
		c.field("Resume", profile.ResumeURL)
	}
	c.io.Println()
	c.io.Println(profile.Bio)
	return nil
}

// runProfileSetup is the onboarding flow: it is the one area a freelancer
// with a pending profile is allowed into, so it bypasses the protected
// guard's onboarding gate and only checks authentication and role directly.
func (c *Cli) runProfileSetup(ctx context.Context) error {
	st := c.session.Snapshot()
	if st.User == nil {
		c.warn("You are not logged in. Run 'worklane login' first.")
		return nil
	}
	if !st.User.IsFreelance() {
		c.warn("Only freelancer accounts have an onboarding profile. Your dashboard: %s",
			guard.DashboardPath(st.User.Role))
		return nil
	}

	c.title("Freelance profile setup")

	headline, err := c.io.ReadInput("Headline: ")
	if err != nil {
		return fmt.Errorf("failed to read headline: %w", err)
	}
	bio, err := c.io.ReadInput("Bio: ")
	if err != nil {
		return fmt.Errorf("failed to read bio: %w", err)
	}
	rateRaw, err := c.io.ReadInput("Hourly rate: ")
	if err != nil {
		return fmt.Errorf("failed to read hourly rate: %w", err)
	}
	rate, err := strconv.ParseFloat(rateRaw, 64)
	if err != nil {
		return fmt.Errorf("invalid hourly rate: %s", rateRaw)
	}
	skillsRaw, err := c.io.ReadInput("Skills (comma-separated): ")
	if err != nil {
		return fmt.Errorf("failed to read skills: %w", err)
	}

	var skills []string
	for _, s := range strings.Split(skillsRaw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}

	if _, err := c.api.CreateFreelanceProfile(ctx, api.CreateFreelanceProfileRequest{
		Headline:   headline,
		Bio:        bio,
		HourlyRate: rate,
		Skills:     skills,
	}); err != nil {
		return err
	}

	// The onboarding gate opens on the next session refresh.
	if err := c.session.RefreshUser(ctx); err != nil {
		c.log.Debug().Err(err).Msg("failed to refresh session after onboarding")
	}

	c.io.Println()
	c.ok("Profile created! Welcome to Worklane.")
	return nil
}

func (c *Cli) runProfileUpload(ctx context.Context, kind string, args []string) error {
	if !c.gate(api.RoleProvider) {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: worklane profile %s <file>", kind)
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	upload := c.api.UploadFreelanceAvatar
	if kind == "resume" {
		upload = c.api.UploadFreelanceResume
	}
	if _, err := upload(ctx, filepath.Base(args[0]), file); err != nil {
		return err
	}

	c.ok("Your %s has been updated.", kind)
	return nil
}
