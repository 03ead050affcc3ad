// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import "github.com/pdiddy/briefing-engine/pkg/types"

// defaultTitles is the per-type fallback title table. Generators reach
// it through slideTitle, which prefers a corpus-sourced title and only
// then picks uniformly from the matching list here.
var defaultTitles = map[types.SlideType][]string{
	types.SlideAgenda: {
		"Agenda",
		"Today's Agenda",
		"Briefing Roadmap",
	},
	types.SlideBullets: {
		"Key Takeaways",
		"Critical Enablers",
		"Strategic Imperatives",
		"Where We Are Today",
		"Challenges and Opportunities",
		"Path Forward",
	},
	types.SlideTimeline: {
		"Program Timeline",
		"Way Ahead",
		"Road to Full Operational Capability",
		"Phased Implementation Approach",
	},
	types.SlideMatrix: {
		"Risk Assessment Matrix",
		"Capability Status",
		"Stoplight Summary",
		"Portfolio Health",
	},
	types.SlideOrgChart: {
		"Organizational Construct",
		"Governance Structure",
		"Task Organization",
		"Roles and Responsibilities",
	},
	types.SlideFlowchart: {
		"Process Overview",
		"Decision Flow",
		"Battle Rhythm",
		"How It All Connects",
	},
	types.SlideBudget: {
		"Resource Profile",
		"Funding Across the FYDP",
		"Budget Outlook",
		"Cost Summary ($M)",
	},
	types.SlideVenn: {
		"The Intersection",
		"Finding the Sweet Spot",
		"Convergence of Effort",
		"Our Value Proposition",
	},
}

// bulletVerbs open each bullet line.
var bulletVerbs = []string{
	"Leverage", "Synchronize", "Operationalize", "Accelerate",
	"Harmonize", "Optimize", "Integrate", "Prioritize",
	"Institutionalize", "De-conflict", "Matrix", "Socialize",
	"Posture", "Right-size", "Champion", "Enable",
}

// bulletQualifiers close each bullet line.
var bulletQualifiers = []string{
	"across all echelons",
	"in a resource-constrained environment",
	"through the FYDP",
	"at the speed of relevance",
	"without additional end strength",
	"consistent with commander's intent",
	"leveraging existing authorities",
	"in coordination with mission partners",
	"to outpace peer adversaries",
	"with measurable outcomes",
	"against validated requirements",
	"inside the adversary's decision cycle",
	"pending final legal review",
	"as the threat landscape evolves",
}

// defaultBottomLines back the bullets summary when the corpus has no
// sample sentence for the type.
var defaultBottomLines = []string{
	"Bottom line: we must act now to preserve overmatch.",
	"Bottom line: the status quo is not an option.",
	"Bottom line: this is a warfighting imperative.",
	"Bottom line: success requires sustained senior-leader engagement.",
	"Bottom line: alignment is the decisive factor.",
}

// timelinePhases is the fixed phase vocabulary; timelines are never
// corpus-driven.
var timelinePhases = []string{
	"Concept Refinement",
	"Requirements Definition",
	"Analysis of Alternatives",
	"Risk Reduction",
	"Prototype Demonstration",
	"Milestone B Decision",
	"Engineering Development",
	"Integration & Test",
	"Operational Assessment",
	"Low-Rate Production",
	"Full-Rate Production",
	"Initial Fielding",
	"Sustainment Transition",
	"Capability Refresh",
}

// matrixRowLabels and matrixColLabels are the fixed risk-matrix
// category vocabularies.
var matrixRowLabels = []string{
	"Schedule", "Cost", "Performance", "Staffing", "Integration",
	"Cyber Posture", "Supply Chain", "Training", "Test Readiness",
	"Stakeholder Buy-In",
}

var matrixColLabels = []string{
	"Current", "30 Days", "60 Days", "90 Days", "End State",
	"FY Close", "Objective",
}

// orgBoxLabels is the fixed organizational hierarchy vocabulary.
var orgBoxLabels = []string{
	"Executive Steering Group",
	"Program Director",
	"Deputy Director",
	"Chief of Staff",
	"Integration Cell",
	"Requirements Branch",
	"Resource Management",
	"Test & Evaluation",
	"Cyber Division",
	"Logistics Cell",
	"Strategic Comms",
	"Data Analytics Team",
	"Liaison Office",
	"Innovation Cell",
}

// flowNodeLabels is the fixed process-node vocabulary.
var flowNodeLabels = []string{
	"Intake",
	"Triage",
	"Stakeholder Review",
	"Working Group",
	"Draft Decision Memo",
	"Legal Review",
	"Resource Scrub",
	"Executive Approval",
	"Implementation",
	"Assessment",
	"Lessons Learned",
	"Re-Baseline",
}

// connectives label flowchart transitions.
var connectives = []string{
	"enables", "informs", "drives", "feeds", "synchronizes",
	"accelerates", "de-risks", "aligns", "unlocks", "operationalizes",
}

// budgetYears is the fixed six-column fiscal-year header.
var budgetYears = []string{"FY25", "FY26", "FY27", "FY28", "FY29", "FY30"}

// budgetCategories is the fixed funding-line vocabulary.
var budgetCategories = []string{
	"Platform Modernization",
	"Enterprise IT",
	"Sustainment",
	"R&D Initiatives",
	"Training & Readiness",
	"Facilities",
	"Contract Support",
	"Emerging Technology",
	"Program Reserve",
	"Travel & Conferences",
}

// vennCircleLabels and vennCenterLabels are the fixed venn
// vocabularies.
var vennCircleLabels = []string{
	"People", "Process", "Technology", "Policy",
	"Budget", "Culture", "Data", "Mission",
}

var vennCenterLabels = []string{
	"Synergy", "The Sweet Spot", "Mission Success",
	"Convergence", "Victory", "Alignment",
}

// subtitlePlain and subtitleAcronym are title-slide subtitle templates;
// the acronym variants interpolate one merged acronym.
var subtitlePlain = []string{
	"A Holistic Approach to the Future Fight",
	"Delivering Decision Advantage",
	"Transforming at the Speed of Relevance",
	"One Team, One Fight",
	"Posturing for Peer Competition",
}

var subtitleAcronym = []string{
	"A %s-Enabled Approach",
	"Leveraging %s for the Future Fight",
	"%s: From Concept to Capability",
	"Integrating %s Across the Enterprise",
}

// caveats is the title-slide sensitivity caveat set.
var caveats = []string{
	"DRAFT // PRE-DECISIONAL",
	"NOT FOR FURTHER DISTRIBUTION",
	"WORKING PAPERS // DELIBERATIVE",
	"FOR DISCUSSION PURPOSES ONLY",
	"DO NOT QUOTE OR CITE",
	"CLOSE HOLD UNTIL RELEASE",
}

// presenterRanks and presenterNames combine into agenda presenters.
var presenterRanks = []string{
	"Col", "Lt Col", "Maj", "CAPT", "CDR", "COL", "LTC",
	"Mr.", "Ms.", "Dr.",
}

var presenterNames = []string{
	"Hargrove", "Delgado", "Whitfield", "Okafor", "Brennan",
	"Castellano", "Pruitt", "Nakamura", "Ellison", "Vance",
	"McAllister", "Singh",
}

// questionsHeadings and backupHeadings label the closing slides.
var questionsHeadings = []string{
	"Questions?",
	"Questions / Discussion",
	"Open Discussion",
	"Questions for the Group",
	"Discussion",
}

var backupHeadings = []string{
	"BACKUP",
	"BACKUP SLIDES",
	"Backup Material",
	"Reference Slides",
}
