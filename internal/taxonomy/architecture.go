package taxonomy

const architectureRubric = `VALUE FLOW ARCHITECTURE FRAMEWORK

1. Characterize the business on four axes:
- Value flow: Pipe is one-way (make, then sell to the end user); Platform is
  two-sided (enables exchange between parties); Layer enables other businesses'
  value flows (infrastructure or APIs); Hybrid combines these patterns
- Core activities: Pipe produces and distributes along a linear chain; Platform
  matches, curates and governs trust between participants; Layer operates and
  scales programmable infrastructure; Hybrid both produces and orchestrates
- Network effects: none or weak for Pipe, strong direct and indirect for Platform,
  moderate ecosystem effects for Layer, selective for Hybrid
- Asset intensity: medium to high for Pipe (plant, inventory), low to medium for
  Platform, high for Layer (infrastructure capex), varied for Hybrid

2. Decide:
- Facilitates transactions between user groups with strong network effects: Platform
- Produces or transforms something and sells it linearly: Pipe
- Provides infrastructure that others build upon: Layer
- Combines owned production with ecosystem orchestration: Hybrid

3. Confirm with the revenue pattern: unit markup, subscriptions and service
annuities fit Pipe; take-rates, listing fees and advertising fit Platform;
usage-based and per-call billing fit Layer; mixed streams fit Hybrid.`

var architectureSpec = Spec{
	Dimension: Architecture,
	Title:     "Value Flow Architecture",
	Role:      "You are a business architecture expert classifying how value flows through a business.",
	Rubric:    architectureRubric,
	Allowed: []string{
		"Pipe",
		"Platform",
		"Layer",
		"Hybrid",
	},
	Example: Example{
		Main:          "Platform",
		Other:         []string{"Layer"},
		Justification: "The business enables two-sided exchange between [user groups] with strong network effects evidenced by [detail]. Revenue from [model] confirms Platform.",
	},
	OtherHint:         "architectural characteristics",
	JustificationHint: "cite framework criteria and specific evidence",
}
