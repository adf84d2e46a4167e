package engine

// policyInput bundles everything the mode rules may consult.
type policyInput struct {
	pos      Position
	prevMode Mode
	trending bool
}

// modeRule is one entry in the ordered decision table. Rules are evaluated
// top to bottom and the first rule whose predicate holds decides the mode.
type modeRule struct {
	name string
	when func(in policyInput) bool
	pick func(in policyInput) Mode
}

func fixed(m Mode) func(policyInput) Mode {
	return func(policyInput) Mode { return m }
}

// modeRules is the full precedence chain. The trailing fallback always
// matches, so the table is total.
var modeRules = []modeRule{
	{
		name: "dominant-control",
		when: func(in policyInput) bool { return in.pos.Control > 70 && in.pos.Mobility > 35 },
		pick: fixed(ModeAtacar),
	},
	{
		name: "cramped",
		when: func(in policyInput) bool { return in.pos.Control < 30 && in.pos.Mobility < 20 },
		pick: fixed(ModePensar),
	},
	{
		name: "opening-book",
		when: func(in policyInput) bool { return in.pos.Phase == PhaseOpening },
		pick: fixed(ModePensar),
	},
	{
		name: "endgame-push",
		when: func(in policyInput) bool { return in.pos.Phase == PhaseEndgame && in.pos.Mobility > 25 },
		pick: fixed(ModeAtacar),
	},
	{
		name: "open-up",
		when: func(in policyInput) bool { return in.prevMode == ModePensar && in.pos.Mobility > 30 },
		pick: fixed(ModeAtacar),
	},
	{
		name: "regroup",
		when: func(in policyInput) bool { return in.prevMode == ModeAtacar && in.pos.Control < 40 },
		pick: fixed(ModePensar),
	},
	{
		name: "trend-fallback",
		when: func(policyInput) bool { return true },
		pick: func(in policyInput) Mode {
			if in.trending {
				return ModeAtacar
			}
			return ModePensar
		},
	},
}

// DecideMode chooses the acting side's mode for the current ply. The history
// is read-only: its last three modular scores feed the trending flag, which
// only matters when no earlier rule fires.
func DecideMode(pos Position, prevMode Mode, history []EvalRecord) Mode {
	in := policyInput{
		pos:      pos,
		prevMode: prevMode,
		trending: trendingUp(history) && pos.Phase != PhaseOpening,
	}
	for _, rule := range modeRules {
		if rule.when(in) {
			return rule.pick(in)
		}
	}
	return ModePensar // unreachable, table is total
}

// trendingUp reports whether the last three modular scores are non-decreasing.
func trendingUp(history []EvalRecord) bool {
	if len(history) < 3 {
		return false
	}
	recent := history[len(history)-3:]
	return recent[1].ModularScore >= recent[0].ModularScore &&
		recent[2].ModularScore >= recent[1].ModularScore
}
