package status

// stateFIPSToName maps 2-digit state FIPS codes to full state names, matching
// the STATEFP field of the Census cartographic boundary files.
var stateFIPSToName = map[string]string{
	"01": "Alabama", "02": "Alaska", "04": "Arizona", "05": "Arkansas",
	"06": "California", "08": "Colorado", "09": "Connecticut",
	"10": "Delaware", "11": "District of Columbia", "12": "Florida",
	"13": "Georgia", "15": "Hawaii", "16": "Idaho", "17": "Illinois",
	"18": "Indiana", "19": "Iowa", "20": "Kansas", "21": "Kentucky",
	"22": "Louisiana", "23": "Maine", "24": "Maryland",
	"25": "Massachusetts", "26": "Michigan", "27": "Minnesota",
	"28": "Mississippi", "29": "Missouri", "30": "Montana",
	"31": "Nebraska", "32": "Nevada", "33": "New Hampshire",
	"34": "New Jersey", "35": "New Mexico", "36": "New York",
	"37": "North Carolina", "38": "North Dakota", "39": "Ohio",
	"40": "Oklahoma", "41": "Oregon", "42": "Pennsylvania",
	"44": "Rhode Island", "45": "South Carolina", "46": "South Dakota",
	"47": "Tennessee", "48": "Texas", "49": "Utah", "50": "Vermont",
	"51": "Virginia", "53": "Washington", "54": "West Virginia",
	"55": "Wisconsin", "56": "Wyoming", "72": "Puerto Rico",
}

var stateNameToFIPS = make(map[string]string, len(stateFIPSToName))

func init() {
	for fp, name := range stateFIPSToName {
		stateNameToFIPS[name] = fp
	}
}

// StateName returns the full state name for a 2-digit state FIPS code.
func StateName(fp string) (string, bool) {
	name, ok := stateFIPSToName[fp]
	return name, ok
}

// StateFIPS returns the 2-digit FIPS code for a full state name.
func StateFIPS(name string) (string, bool) {
	fp, ok := stateNameToFIPS[name]
	return fp, ok
}

// JoinableState reports whether fp belongs to the 50 states or DC and returns
// its name. Territories, Puerto Rico included, stay off the map.
func JoinableState(fp string) (string, bool) {
	if fp == "72" {
		return "", false
	}
	name, ok := stateFIPSToName[fp]
	return name, ok
}
