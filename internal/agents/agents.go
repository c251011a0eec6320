// Package agents defines the supported AI coding agents, the resource
// categories rulekit distributes, and the destination resolution rules.
package agents

// Category identifies a distributable subtree of the rules root.
type Category string

const (
	Commands  Category = "commands"
	Skills    Category = "skills"
	Subagents Category = "subagents"
)

// AllCategories returns the distributable categories in sync order.
func AllCategories() []Category {
	return []Category{Commands, Skills, Subagents}
}

// Name identifies a supported AI coding agent.
type Name string

const (
	Cursor Name = "cursor"
	Claude Name = "claude"
	Codex  Name = "codex"
)

// All returns all supported agent names in sync order.
func All() []Name {
	return []Name{Cursor, Claude, Codex}
}

// ParseName converts a string to an agent Name, returning false if unknown.
func ParseName(s string) (Name, bool) {
	switch s {
	case "cursor":
		return Cursor, true
	case "claude":
		return Claude, true
	case "codex":
		return Codex, true
	default:
		return "", false
	}
}

// defaultPaths maps each agent to its destination directory per category,
// relative to the project root. Codex tooling treats sub-agents as ordinary
// prompts, so its subagents path collapses to the commands path.
var defaultPaths = map[Name]map[Category]string{
	Cursor: {
		Commands:  ".cursor/commands",
		Skills:    ".cursor/skills",
		Subagents: ".cursor/agents",
	},
	Claude: {
		Commands:  ".claude/commands",
		Skills:    ".claude/skills",
		Subagents: ".claude/agents",
	},
	Codex: {
		Commands:  ".codex/prompts",
		Skills:    ".codex/skills",
		Subagents: ".codex/prompts",
	},
}

// DefaultPath returns the built-in destination for an (agent, category) pair,
// relative to the project root. The second return is false for unknown agents.
func DefaultPath(agent Name, cat Category) (string, bool) {
	paths, ok := defaultPaths[agent]
	if !ok {
		return "", false
	}
	p, ok := paths[cat]
	return p, ok
}
