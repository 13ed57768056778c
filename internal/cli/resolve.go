package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tasktory/internal/allocation"
	"github.com/alexanderramin/tasktory/internal/repository"
)

// resolveProjectID accepts a short ID (case-insensitive), a full UUID or a
// unique UUID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("project ID is required")
	}

	projects, err := app.Projects.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, p := range projects {
		if strings.EqualFold(p.ShortID, input) {
			return p.ID, nil
		}
	}

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return matchID("project", ids, input)
}

// resolveTeamMemberID accepts a UUID, a unique UUID prefix or an email address.
func resolveTeamMemberID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("team member ID is required")
	}

	members, err := app.Team.List(ctx, repository.TeamMemberFilter{})
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		if strings.EqualFold(m.Email, input) {
			return m.ID, nil
		}
		ids = append(ids, m.ID)
	}
	return matchID("team member", ids, input)
}

// resolveTemplateID accepts a template UUID, a unique UUID prefix or an exact
// template name (case-insensitive).
func resolveTemplateID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("template ID is required")
	}

	templates, err := app.Templates.List(ctx, "")
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(templates))
	for _, t := range templates {
		if strings.EqualFold(t.Name, input) {
			return t.ID, nil
		}
		ids = append(ids, t.ID)
	}
	return matchID("template", ids, input)
}

// resolveMembershipID finds an active membership of the project by its ID,
// ID prefix, or the assigned team member's ID or email.
func resolveMembershipID(ctx context.Context, app *App, projectID, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("member ID is required")
	}

	roster, err := app.Assignments.ListProjectMembers(ctx, projectID)
	if err != nil {
		return "", err
	}

	ids := make([]string, 0, len(roster))
	for _, e := range roster {
		if e.Member.ID == input || strings.EqualFold(e.Member.Email, input) {
			return e.Membership.ID, nil
		}
		ids = append(ids, e.Membership.ID)
	}
	return matchID("project member", ids, input)
}

func matchID(entity string, ids []string, input string) (string, error) {
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", entity, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", entity, input, len(matches))
	}
}

func parseOptionalDate(flag, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(allocation.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date %q: use YYYY-MM-DD", flag, value)
	}
	return &t, nil
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
