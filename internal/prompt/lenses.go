package prompt

// Lenses layer extra instruction blocks onto the base persona. There are
// two tables: one keyed by age band, one by studio theme. A missing or
// unknown key resolves to the empty string — a silent no-op, never an
// error.

var ageLenses = map[string]string{
	"Ages 5-7": `## Age lens: Ages 5-7 (early primary)

Learners are early readers. Favor hands-on, play-based activities with
concrete materials. Projects should resolve within one or two weeks. Keep
any written deliverable to drawings, labels, or a few sentences. Rubrics
use simple "I can" statements.`,

	"Ages 8-10": `## Age lens: Ages 8-10 (upper primary)

Learners can sustain multi-week projects with visible milestones. Mix
making with short written reflection. Group roles work well. Rubrics use
kid-friendly language with 2-3 criteria.`,

	"Ages 11-14": `## Age lens: Ages 11-14 (middle school)

Learners respond to authentic audiences and real-world stakes. Push for
projects with a genuine community connection. They can handle research,
iteration cycles, and peer critique. Rubrics may have 3-4 criteria with
descriptive performance levels.`,

	"Ages 15-18": `## Age lens: Ages 15-18 (high school)

Learners can drive open-ended, discipline-authentic work. Expect
professional-adjacent deliverables: briefs, prototypes, exhibitions,
portfolios. Connect the work to post-secondary or career pathways.
Rubrics should mirror authentic professional standards.`,

	"Ages 18+": `## Age lens: Ages 18+ (adult learners)

Learners are self-directed and time-constrained. Design for autonomy,
flexible pacing, and direct application to the learner's own context.
Assessment emphasizes self-evaluation against transparent criteria.`,
}

var studioLenses = map[string]string{
	"Community Impact": `## Studio lens: Community Impact

Anchor every stage in a real local need. Ideation should surface a
community partner or audience; the curriculum should include fieldwork
or outreach; deliverables should be presented to people outside the
classroom.`,

	"Sustainability": `## Studio lens: Sustainability

Frame the project around environmental systems and stewardship. Prefer
challenges with measurable ecological outcomes, and deliverables that
include data the learners collected themselves.`,

	"Design & Making": `## Studio lens: Design & Making

Center the design cycle: empathize, prototype, test, iterate. The
curriculum should schedule at least two build-test-revise loops, and
deliverables should include a physical or digital artifact plus its
design history.`,

	"Digital Storytelling": `## Studio lens: Digital Storytelling

Treat narrative as the spine of the project. Ideation should find the
story worth telling; the curriculum should teach craft (structure,
media, audience); deliverables are published pieces with a screening or
release moment.`,

	"Scientific Inquiry": `## Studio lens: Scientific Inquiry

Drive the project from a testable question. The curriculum should walk
through hypothesis, method, data, and conclusion, and deliverables
should include the learners' own evidence and an honest discussion of
uncertainty.`,
}

// AgeLens returns the instruction block for an age band, or "" when the
// key has no matching entry.
func AgeLens(ageGroup string) string {
	return ageLenses[ageGroup]
}

// StudioLens returns the instruction block for a studio theme, or ""
// when the key has no matching entry.
func StudioLens(theme string) string {
	return studioLenses[theme]
}

// AgeGroups lists the supported age bands in ascending order, for
// onboarding pickers.
func AgeGroups() []string {
	return []string{"Ages 5-7", "Ages 8-10", "Ages 11-14", "Ages 15-18", "Ages 18+"}
}

// StudioThemes lists the supported studio themes, for onboarding pickers.
func StudioThemes() []string {
	return []string{"Community Impact", "Sustainability", "Design & Making", "Digital Storytelling", "Scientific Inquiry"}
}
