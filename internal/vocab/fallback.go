// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vocab

import "github.com/pdiddy/briefing-engine/pkg/types"

// Classifications is the fixed set of deck-wide sensitivity markings.
// The assembler picks one uniformly per deck.
var Classifications = []types.Classification{
	{Label: "UNCLASSIFIED", Color: "#007a33"},
	{Label: "UNCLASSIFIED//FOUO", Color: "#007a33"},
	{Label: "CUI", Color: "#502b85"},
	{Label: "CONFIDENTIAL", Color: "#0033a0"},
	{Label: "SECRET", Color: "#c8102e"},
	{Label: "TOP SECRET", Color: "#ff8c00"},
	{Label: "TOP SECRET//SCI//NOFORN", Color: "#fce83a"},
}

// Organizations is the fixed presenting-organization list. Organizations
// are never corpus-sourced.
var Organizations = []string{
	"Office of the Under Secretary for Acquisition Synergy",
	"Joint Task Force Integration Cell",
	"Defense Capability Alignment Agency",
	"Strategic Effects Coordination Directorate",
	"Combined Futures Assessment Group",
	"Program Executive Office, Cross-Domain Enablers",
	"Deputy Directorate for Requirements Harmonization",
	"Joint Interoperability Readiness Command",
	"Office of Net Resourcing Assessment",
	"Warfighter Experience Modernization Office",
	"Enterprise Transformation Support Activity",
	"Center for Emerging Threat Convergence",
}

// DefaultPalette is the fixed 8-color palette used whenever the corpus
// cannot supply one of at least three colors.
var DefaultPalette = []string{
	"#003366", "#c8102e", "#ffcc00", "#4a4a4a",
	"#6699cc", "#8a9a5b", "#d9d9d9", "#ffffff",
}

// fallbackTopics seeds deck subjects when the corpus cannot.
var fallbackTopics = []string{
	"Multi-Domain Synergy Initiative",
	"Next-Generation Capability Roadmap",
	"Enterprise Readiness Posture Review",
	"Joint Integration Way Ahead",
	"Strategic Modernization Update",
	"Cross-Functional Alignment Deep Dive",
	"Warfighter-Centric Transformation Plan",
	"Emerging Threat Response Framework",
	"Data-Driven Lethality Overview",
	"Coalition Interoperability Assessment",
	"Resourcing the Future Fight",
	"Digital Backbone Implementation Status",
	"Acquisition Reform Quick Look",
	"Operational Energy Resilience Brief",
	"Spectrum Dominance Campaign Plan",
	"Zero-Based Review Initial Findings",
}

// fallbackTerms is the built-in domain noun list for bullet assembly.
var fallbackTerms = []string{
	"warfighter", "lethality", "readiness", "interoperability",
	"synergy", "capability gap", "battle rhythm", "end state",
	"key terrain", "center of gravity", "lines of effort",
	"operational environment", "force posture", "kill chain",
	"decision space", "information advantage", "domain awareness",
	"mission command", "total force", "joint fires",
	"sustainment", "resilience", "modernization", "overmatch",
}

// fallbackAcronyms is the built-in acronym list.
var fallbackAcronyms = []string{
	"DOTMLPF-P", "CONOPS", "OPLAN", "JCIDS", "POM", "FYDP",
	"ROM", "IOC", "FOC", "MDO", "JADC2", "C5ISR",
	"GOTS", "COTS", "TTP", "AOR", "COA", "MOE",
	"OPTEMPO", "RFI",
}

// fallbackBulletPhrases backs the bullets per-type vocabulary.
var fallbackBulletPhrases = []string{
	"synchronized kill-chain integration",
	"holistic capability portfolio",
	"predictive readiness analytics",
	"federated data environment",
	"agile resourcing construct",
	"threat-informed prioritization",
	"cross-domain effects delivery",
	"outcome-based requirements",
	"accelerated fielding timeline",
	"governance battle rhythm",
	"stakeholder equity mapping",
	"capability-based assessment",
}
