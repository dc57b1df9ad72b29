package content

import "github.com/Yngie-C/personal-branding-report-sub001/internal/model"

type strengthsKey struct {
	Persona model.PersonaType
	Variant model.TemplateVariant
}

// strengthsTemplates holds one 3-point summary for every reachable
// (persona, variant) combination: 10 personas x 3 variants.
var strengthsTemplates = map[strengthsKey][3]string{
	// Visionary Builder
	{model.PersonaVisionaryBuilder, model.VariantBalanced}: {
		"You carry ideas from sketch to shipped product, and your evenly developed profile means no stage of that journey is a weak link.",
		"Teams trust you with ambiguous briefs because you reliably return both a vision and a working plan.",
		"Your balance across all five dimensions lets you switch between inventing and finishing without losing quality in either.",
	},
	{model.PersonaVisionaryBuilder, model.VariantSpiked}: {
		"Your innovation and execution tower over everything else: you are at your best inventing and shipping, back to back.",
		"The sharper your focus on building, the more you outpace people who split their energy evenly.",
		"Lean into the spike: own the zero-to-one work and hand the maintenance phases to complementary partners.",
	},
	{model.PersonaVisionaryBuilder, model.VariantMixed}: {
		"You invent and you deliver, and your uneven profile tells you exactly where a partner adds the most.",
		"Your contrast between creative peaks and quieter dimensions makes your building style distinctive rather than generic.",
		"Anchor your brand on turning ideas into reality, and be open about the supporting roles you prefer to share.",
	},

	// Trend Setter
	{model.PersonaTrendSetter, model.VariantBalanced}: {
		"You spot what is next and make it persuasive, with enough depth across the board to back the story up.",
		"Your even profile means your bold claims survive scrutiny: you can argue, organize, and endure as well as announce.",
		"Audiences stay with you because the trend-spotting sits on a stable, well-rounded foundation.",
	},
	{model.PersonaTrendSetter, model.VariantSpiked}: {
		"Novelty plus narrative is your unmistakable signature: few people combine your level of originality with your reach.",
		"Your spiked profile is a broadcast profile: concentrate on the ideas only you can see and the telling only you can do.",
		"Let others industrialize what you popularize; your edge is at the front of the wave.",
	},
	{model.PersonaTrendSetter, model.VariantMixed}: {
		"You lead with fresh ideas and a strong voice while other dimensions play supporting roles, which keeps your message focused.",
		"The contrast in your profile is clarity: people know exactly what to come to you for.",
		"Pair your trend instincts with collaborators who love the follow-through, and your influence compounds.",
	},

	// Creative Catalyst
	{model.PersonaCreativeCatalyst, model.VariantBalanced}: {
		"You raise the creative level of every group you join, and your rounded profile lets you serve any role the session needs.",
		"Because no dimension lags, you can both spark ideas and help carry them into the plan.",
		"Your balanced catalyst style makes you the rare facilitator whose sessions actually ship outcomes.",
	},
	{model.PersonaCreativeCatalyst, model.VariantSpiked}: {
		"Group creativity is your clear superpower: ideas multiply around you faster than around anyone else in the room.",
		"Your spike says specialize: design and lead the creative moments, and protect that time fiercely.",
		"The strength of your peak lets you be generous with credit; the ideas are traceably yours anyway.",
	},
	{model.PersonaCreativeCatalyst, model.VariantMixed}: {
		"You shine brightest when people and ideas collide, and your profile's quieter areas point to the partners you need after the spark.",
		"The unevenness is a feature: your catalyst role is well-defined, not diluted.",
		"Brand yourself as the person who makes teams more inventive, and choose collaborators who finish what the sessions start.",
	},

	// Pioneering Explorer
	{model.PersonaPioneeringExplorer, model.VariantBalanced}: {
		"You explore further than most because curiosity and endurance reinforce each other across your whole profile.",
		"With no weak dimension, you can run long experiments solo and still bring the results home to a team.",
		"Your balanced explorer style makes you credible both at the frontier and back at base camp.",
	},
	{model.PersonaPioneeringExplorer, model.VariantSpiked}: {
		"Your appetite for the unknown and your tolerance for setbacks are in a different league from the rest of your profile.",
		"That spike is a mandate: take the hardest, least-mapped problems others avoid.",
		"Your endurance at the frontier is rare enough to be a brand on its own; name it and claim it.",
	},
	{model.PersonaPioneeringExplorer, model.VariantMixed}: {
		"You push into new territory and keep going where others quit, while the rest of your profile keeps you honest about support needs.",
		"The contrast in your scores marks a clean division of labor: you scout, partners settle.",
		"Build your story around expeditions completed, and let the record of survived failures do the persuading.",
	},

	// Strategic Driver
	{model.PersonaStrategicDriver, model.VariantBalanced}: {
		"You decide, align, and deliver, and your even profile means you can do it in any room with any team.",
		"Stakeholders follow you because your push for results comes with genuine range: creativity, empathy, and stamina included.",
		"Your balanced drive makes you a natural general manager: strong everywhere, dominant where it counts.",
	},
	{model.PersonaStrategicDriver, model.VariantSpiked}: {
		"Execution and influence are your twin peaks: you move organizations with unusual force.",
		"Your spiked profile suits decisive mandates: take the roles where speed and alignment decide everything.",
		"Surround the peaks with people who bring the exploration and care your profile spends less on.",
	},
	{model.PersonaStrategicDriver, model.VariantMixed}: {
		"You concentrate your energy on getting important things decided and done, and your profile shows that focus honestly.",
		"The gap between your driving strengths and your quieter dimensions makes delegation a strategy, not a confession.",
		"Your brand is momentum with direction; keep the message that simple.",
	},

	// Reliable Orchestrator
	{model.PersonaReliableOrchestrator, model.VariantBalanced}: {
		"You hold complex efforts together, and your evenness means every function trusts you as one of their own.",
		"Your rounded profile turns coordination into leadership: you understand the work you are sequencing.",
		"Teams plan around you because your reliability extends across the whole board, not one specialty.",
	},
	{model.PersonaReliableOrchestrator, model.VariantSpiked}: {
		"Dependable delivery inside healthy teams is your towering strength; almost nothing else in your profile comes close.",
		"Own the integrator roles: the spike says you are the person multi-team efforts should route through.",
		"Your calm coordination is scarce and valuable; price it accordingly in how you present yourself.",
	},
	{model.PersonaReliableOrchestrator, model.VariantMixed}: {
		"You keep commitments and keep teams whole, and the quieter parts of your profile show where partners slot in.",
		"Contrast gives your reliability a shape: steady hands at the center, specialists at the edges.",
		"Make kept promises your headline; your track record is the brand.",
	},

	// Steadfast Achiever
	{model.PersonaSteadfastAchiever, model.VariantBalanced}: {
		"You deliver through adversity, and your balanced profile means the endurance never costs you judgment or relationships.",
		"Every dimension holding strong makes your persistence strategic rather than stubborn.",
		"Your all-weather consistency is the kind of reputation that compounds for decades.",
	},
	{model.PersonaSteadfastAchiever, model.VariantSpiked}: {
		"Discipline under pressure is your defining spike: conditions that break schedules do not break yours.",
		"Take the missions with hard deadlines and real stakes; the spike is built for them.",
		"Let partners handle the politics and the brainstorms while you guarantee the result.",
	},
	{model.PersonaSteadfastAchiever, model.VariantMixed}: {
		"You finish what you start regardless of conditions, and your profile is frank about where you spend less energy.",
		"The contrast makes your promise crisp: outcomes, reliably, under pressure.",
		"Build your brand on the streak of delivered results and let others decorate the story.",
	},

	// Community Connector
	{model.PersonaCommunityConnector, model.VariantBalanced}: {
		"You build rooms where things happen, and your even profile means you contribute inside them as much as you convene them.",
		"Because no dimension lags, your communities get a leader, not just a host.",
		"Your balanced connector style turns networks into durable institutions.",
	},
	{model.PersonaCommunityConnector, model.VariantSpiked}: {
		"Bringing the right people together is your standout gift; the spike says to make it your occupation, not your hobby.",
		"Your reach and warmth dwarf the rest of your profile: be the hub and be unapologetic about it.",
		"Delegate the operations of your communities so your energy stays on the connections only you can make.",
	},
	{model.PersonaCommunityConnector, model.VariantMixed}: {
		"People and belonging are clearly your territory, and your profile's contrast shows exactly which complementary partners your communities need.",
		"The unevenness keeps your role legible: you gather, others govern.",
		"Anchor your brand in the groups that exist because you started them.",
	},

	// Resilient Advocate
	{model.PersonaResilientAdvocate, model.VariantBalanced}: {
		"You argue causes through resistance, and your rounded profile gives the conviction range: you can plan, create, and cooperate in service of it.",
		"Balance keeps your advocacy credible; you persuade as someone who also builds and delivers.",
		"Your staying power across every dimension makes your voice hard to outlast.",
	},
	{model.PersonaResilientAdvocate, model.VariantSpiked}: {
		"Conviction under fire is your spike: you keep making the case long after the room expected you to fold.",
		"Take the fights that matter most; your profile is built for long campaigns, not quick wins.",
		"Let allies manage the logistics while your energy stays on the argument.",
	},
	{model.PersonaResilientAdvocate, model.VariantMixed}: {
		"Your voice and your endurance lead clearly, and the rest of your profile tells you which supporters to recruit.",
		"Contrast sharpens your position: people know you as the one who does not quit on a cause.",
		"Brand yourself by the positions you held early and proved right.",
	},

	// Grounded Harmonizer
	{model.PersonaGroundedHarmonizer, model.VariantBalanced}: {
		"You steady teams through hard seasons, and your even profile means the steadiness comes with real substance in every direction.",
		"Balance makes you a complete safe pair of hands: calm, capable, and broadly skilled.",
		"Your grounded presence scales: whole organizations can rest weight on it.",
	},
	{model.PersonaGroundedHarmonizer, model.VariantSpiked}: {
		"Holding people together under stress is your towering strength; few profiles peak this high on trust.",
		"The spike is a role: be the designated center of the storm and let that be the job title.",
		"Guard your own reserves deliberately; your stability is the resource everyone draws on.",
	},
	{model.PersonaGroundedHarmonizer, model.VariantMixed}: {
		"You are the steady center, and the quieter dimensions of your profile mark the edges where bolder partners belong.",
		"The contrast protects you from being everything to everyone; your lane is cohesion.",
		"Build your brand on the teams that stayed whole because you were in them.",
	},
}

// StrengthsSummaryPoints returns the 3-point summary for a persona and
// variant. False means the table is missing a reachable combination.
func StrengthsSummaryPoints(p model.PersonaType, v model.TemplateVariant) ([3]string, bool) {
	pts, ok := strengthsTemplates[strengthsKey{p, v}]
	return pts, ok
}
