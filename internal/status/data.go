package status

// Curated dry/moist county snapshot, compiled February 2026 from state ABC
// boards, NABCA data and public records. Only non-wet counties are listed;
// every other county defaults to Wet.

// DefaultTable builds the curated snapshot.
func DefaultTable() (*Table, error) {
	b := NewBuilder()

	// Dry counties (no legal retail alcohol sales anywhere in the county).

	// Arkansas: AR GIS Office / ABC Division, Feb 2025. 31 dry counties.
	// Hot Spring County voted wet in November 2022. Private club permits
	// may allow limited on-premise consumption.
	b.Add("Arkansas", []string{
		"Ashley", "Bradley", "Clay", "Cleburne", "Craighead", "Crawford",
		"Faulkner", "Fulton", "Grant", "Hempstead", "Howard", "Independence",
		"Izard", "Johnson", "Lafayette", "Lawrence", "Lincoln", "Logan",
		"Lonoke", "Montgomery", "Nevada", "Newton", "Perry", "Pike", "Pope",
		"Scott", "Searcy", "Sebastian", "Stone", "White", "Yell",
	}, Dry)

	// Texas: TABC, March 2025. Only 3 fully dry counties remain;
	// Throckmorton voted wet Nov 2024.
	b.Add("Texas", []string{"Borden", "Kent", "Roberts"}, Dry)

	// Mississippi: MS Dept of Revenue, Aug 2025. Benton is the only county
	// with zero alcohol sales exceptions.
	b.Add("Mississippi", []string{"Benton"}, Dry)

	// Florida: FL Division of Alcoholic Beverages. Liberty County is the
	// only fully dry county.
	b.Add("Florida", []string{"Liberty"}, Dry)

	// South Dakota: Oglala Lakota County (Pine Ridge Reservation). Older
	// shapefiles list it under its pre-2015 name, Shannon.
	b.Add("South Dakota", []string{"Oglala Lakota", "Shannon"}, Dry)

	// Moist counties (restrictions with exceptions).

	// Alabama: Alabama ABC Board, 2025. Zero fully dry counties. These 23
	// are dry at county level but contain one or more wet cities
	// (74 wet cities total).
	b.Add("Alabama", []string{
		"Blount", "Cherokee", "Chilton", "Clarke", "Clay", "Coffee",
		"Cullman", "DeKalb", "Fayette", "Franklin", "Geneva", "Jackson",
		"Lamar", "Lauderdale", "Lawrence", "Marion", "Marshall", "Monroe",
		"Morgan", "Pickens", "Randolph", "Washington", "Winston",
	}, Moist)

	// Kentucky: KY ABC, 2022-2025. Historically ~39 dry counties; about 10
	// remain fully dry, the rest moist with wet cities or limited
	// restaurant sales. Classified conservatively as moist since the exact
	// split is fluid.
	b.Add("Kentucky", []string{
		"Adair", "Allen", "Ballard", "Bath", "Breathitt", "Butler",
		"Carlisle", "Casey", "Clinton", "Crittenden", "Cumberland",
		"Elliott", "Estill", "Fleming", "Hancock", "Hart", "Hickman",
		"Jackson", "Knott", "Knox", "Larue", "Lawrence", "Lee", "Leslie",
		"Lincoln", "McCreary", "McLean", "Martin", "Menifee", "Metcalfe",
		"Monroe", "Morgan", "Ohio", "Owsley", "Powell", "Robertson",
		"Rockcastle", "Russell", "Webster",
	}, Moist)

	// Mississippi: dry at county level but with wet municipalities
	// (county seat, etc.)
	b.Add("Mississippi", []string{
		"Alcorn", "Amite", "Calhoun", "Chickasaw", "Choctaw", "Clarke",
		"Covington", "Franklin", "George", "Greene", "Itawamba", "Jasper",
		"Jones", "Kemper", "Lamar", "Lawrence", "Leake", "Lincoln",
		"Monroe", "Neshoba", "Newton", "Pearl River", "Pontotoc",
		"Prentiss", "Scott", "Simpson", "Smith", "Tate", "Tippah",
		"Tishomingo", "Union", "Wayne", "Webster",
	}, Moist)

	// Tennessee: TN ABC, 2025. Tennessee is dry by default; only ~10
	// counties are fully wet (Davidson, Hamilton, Knox, Shelby, etc.).
	// All other counties classified as moist.
	b.Add("Tennessee", []string{
		"Anderson", "Bedford", "Bledsoe", "Blount", "Bradley", "Campbell",
		"Cannon", "Carroll", "Carter", "Cheatham", "Chester", "Claiborne",
		"Clay", "Cocke", "Coffee", "Crockett", "Cumberland", "Decatur",
		"DeKalb", "Dickson", "Dyer", "Fayette", "Fentress", "Franklin",
		"Gibson", "Giles", "Grainger", "Greene", "Grundy", "Hamblen",
		"Hancock", "Hardeman", "Hardin", "Hawkins", "Haywood", "Henderson",
		"Henry", "Hickman", "Houston", "Humphreys", "Jackson", "Jefferson",
		"Johnson", "Lake", "Lauderdale", "Lawrence", "Lewis", "Lincoln",
		"Loudon", "Macon", "Madison", "Marion", "Marshall", "Maury",
		"McMinn", "McNairy", "Meigs", "Monroe", "Montgomery", "Moore",
		"Morgan", "Obion", "Overton", "Perry", "Pickett", "Polk", "Putnam",
		"Rhea", "Roane", "Robertson", "Rutherford", "Scott", "Sequatchie",
		"Sevier", "Smith", "Stewart", "Sullivan", "Sumner", "Tipton",
		"Trousdale", "Unicoi", "Union", "Van Buren", "Warren",
		"Washington", "Wayne", "Weakley", "White", "Williamson", "Wilson",
	}, Moist)

	// Florida: Lafayette allows beer but prohibits liquor and wine sales.
	b.Add("Florida", []string{"Lafayette"}, Moist)

	// Georgia: GA Dept of Revenue, 2025. These counties restrict distilled
	// spirits but allow beer and wine.
	b.Add("Georgia", []string{
		"Bleckley", "Butts", "Coweta", "Decatur", "Dodge", "Effingham",
		"Hart",
	}, Moist)

	return b.Build()
}
