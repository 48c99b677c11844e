package schema

// ImageContext carries the facts the image-variable rules are allowed to
// depend on.
type ImageContext struct {
	// Model is the resolved model variant name.
	Model string
	// HasSubset reports whether the configuration defines the optional
	// subset key.
	HasSubset bool
}

// fieldRule decides whether a single image variable is active for a run.
// A nil predicate means the field is always active.
type fieldRule struct {
	name string
	when func(ImageContext) bool
}

func modelIs(model string) func(ImageContext) bool {
	return func(ic ImageContext) bool { return ic.Model == model }
}

// imageRules lists the conditionally-included image variables. The two dual
// temperature fields exist only for DTD, the low-resolution flux fields only
// for disTSEB, and subset only when the file defines it.
var imageRules = []fieldRule{
	{name: "T_A0", when: modelIs(ModelDTD)},
	{name: "T_R0", when: modelIs(ModelDTD)},
	{name: "flux_LR", when: modelIs(ModelDisTSEB)},
	{name: "flux_LR_ancillary", when: modelIs(ModelDisTSEB)},
	{name: "subset", when: func(ic ImageContext) bool { return ic.HasSubset }},
}

// ruleFor returns the rule governing a field, if any.
func ruleFor(name string) (fieldRule, bool) {
	for _, rule := range imageRules {
		if rule.name == name {
			return rule, true
		}
	}
	return fieldRule{}, false
}

// ActiveImageVars returns the image variables active under the given
// context, in the declaration order of ImageVars.
func ActiveImageVars(ic ImageContext) []string {
	active := make([]string, 0, len(ImageVars))
	for _, name := range ImageVars {
		if rule, ok := ruleFor(name); ok && !rule.when(ic) {
			continue
		}
		active = append(active, name)
	}
	return active
}
