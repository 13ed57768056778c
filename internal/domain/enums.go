package domain

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
	ProjectArchived  ProjectStatus = "archived"
)

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"planning": true, "active": true, "completed": true,
	"cancelled": true, "archived": true,
}

type SkillLevel string

const (
	SkillJunior SkillLevel = "Junior"
	SkillMid    SkillLevel = "Mid"
	SkillSenior SkillLevel = "Senior"
)

// ValidSkillLevels is the canonical set of accepted skill level strings.
var ValidSkillLevels = map[string]bool{
	"Junior": true, "Mid": true, "Senior": true,
}

// ProjectRoles lists the roles offered when assigning a member to a project.
// Free-form roles are accepted as well.
var ProjectRoles = []string{
	"Project Manager", "Tech Lead", "Senior Developer", "Junior Developer",
	"Frontend Developer", "Backend Developer", "Full-stack Developer",
	"DevOps Engineer", "QA Engineer", "UI/UX Designer", "Planner",
	"Data Analyst", "Other",
}
