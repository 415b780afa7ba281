package catalog

// coreCodeNames are the general-education requirement tags and their labels.
var coreCodeNames = map[string]string{
	"AHO": "Arts & Humanities - Arts",
	"AHP": "Arts & Humanities - Literature",
	"AHQ": "Arts & Humanities - Philosophy",
	"AHR": "Arts & Humanities - Religion",
	"CCD": "Contemporary Challenges - Diversity",
	"CCO": "Contemporary Challenges - Our Common Future",
	"HST": "Historical Analysis",
	"ITR": "Information Technology",
	"NS":  "Natural Sciences",
	"QQ":  "Quantitative & Formal Reasoning - Math",
	"QR":  "Quantitative & Formal Reasoning - Reasoning",
	"SCL": "Social Analysis",
	"WCD": "Writing & Communication - Writing",
	"WCR": "Writing & Communication - Revision",
}

// CoreCodeName returns the label for a core tag, or the tag itself.
func CoreCodeName(tag string) string {
	if name, ok := coreCodeNames[normalizeTag(tag)]; ok {
		return name
	}
	return tag
}

// IsKnownCoreCode reports whether tag is a recognized core requirement.
func IsKnownCoreCode(tag string) bool {
	_, ok := coreCodeNames[normalizeTag(tag)]
	return ok
}
