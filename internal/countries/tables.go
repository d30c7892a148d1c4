package countries

// Static lookup tables. Country names are keyed exactly as the source
// pages print them; lookups go through Unicode case folding, so casing
// differences do not matter.

// remap translates renamed or long-form country names to the canonical
// name used in codes. Consulted before the code lookup. Kept as a plain
// data table so additions stay auditable.
var remap = map[string]string{
	"United States of America":               "United States",
	"People's Republic of China":             "China",
	"Russian Federation":                     "Russia",
	"Republic of Korea":                      "South Korea",
	"Korea, Republic of":                     "South Korea",
	"Democratic People's Republic of Korea":  "North Korea",
	"Islamic Republic of Iran":               "Iran",
	"Türkiye":                                "Turkey",
	"Viet Nam":                               "Vietnam",
	"Czechia":                                "Czech Republic",
	"Republic of Moldova":                    "Moldova",
	"Macao":                                  "Macau",
	"Macao, China":                           "Macau",
	"Hong Kong, China":                       "Hong Kong",
	"Chinese Taipei":                         "Taiwan",
	"Great Britain":                          "United Kingdom",
	"Côte d'Ivoire":                          "Ivory Coast",
	"Syrian Arab Republic":                   "Syria",
	"Lao People's Democratic Republic":       "Laos",
	"The former Yugoslav Republic of Macedonia": "North Macedonia",
	"Macedonia": "North Macedonia",
}

// historical lists dissolved states that must never appear in the output.
var historical = []string{
	"Soviet Union",
	"Union of Soviet Socialist Republics",
	"Commonwealth of Independent States",
	"CIS",
	"Yugoslavia",
	"Socialist Federal Republic of Yugoslavia",
	"Serbia and Montenegro",
	"East Germany",
	"German Democratic Republic",
	"Czechoslovakia",
}

// codes maps canonical country names to ISO 3166-1 alpha-3 codes.
var codes = map[string]string{
	"Afghanistan":            "AFG",
	"Albania":                "ALB",
	"Algeria":                "DZA",
	"Argentina":              "ARG",
	"Armenia":                "ARM",
	"Australia":              "AUS",
	"Austria":                "AUT",
	"Azerbaijan":             "AZE",
	"Bahrain":                "BHR",
	"Bangladesh":             "BGD",
	"Belarus":                "BLR",
	"Belgium":                "BEL",
	"Benin":                  "BEN",
	"Bolivia":                "BOL",
	"Bosnia and Herzegovina": "BIH",
	"Botswana":               "BWA",
	"Brazil":                 "BRA",
	"Brunei":                 "BRN",
	"Bulgaria":               "BGR",
	"Burkina Faso":           "BFA",
	"Cambodia":               "KHM",
	"Canada":                 "CAN",
	"Chile":                  "CHL",
	"China":                  "CHN",
	"Colombia":               "COL",
	"Costa Rica":             "CRI",
	"Croatia":                "HRV",
	"Cuba":                   "CUB",
	"Cyprus":                 "CYP",
	"Czech Republic":         "CZE",
	"Denmark":                "DNK",
	"Dominican Republic":     "DOM",
	"Ecuador":                "ECU",
	"Egypt":                  "EGY",
	"El Salvador":            "SLV",
	"Estonia":                "EST",
	"Finland":                "FIN",
	"France":                 "FRA",
	"Gabon":                  "GAB",
	"Gambia":                 "GMB",
	"Georgia":                "GEO",
	"Germany":                "DEU",
	"Ghana":                  "GHA",
	"Greece":                 "GRC",
	"Guatemala":              "GTM",
	"Honduras":               "HND",
	"Hong Kong":              "HKG",
	"Hungary":                "HUN",
	"Iceland":                "ISL",
	"India":                  "IND",
	"Indonesia":              "IDN",
	"Iran":                   "IRN",
	"Iraq":                   "IRQ",
	"Ireland":                "IRL",
	"Israel":                 "ISR",
	"Italy":                  "ITA",
	"Ivory Coast":            "CIV",
	"Japan":                  "JPN",
	"Jordan":                 "JOR",
	"Kazakhstan":             "KAZ",
	"Kenya":                  "KEN",
	"Kosovo":                 "KSV",
	"Kuwait":                 "KWT",
	"Kyrgyzstan":             "KGZ",
	"Laos":                   "LAO",
	"Latvia":                 "LVA",
	"Libya":                  "LBY",
	"Liechtenstein":          "LIE",
	"Lithuania":              "LTU",
	"Luxembourg":             "LUX",
	"Macau":                  "MAC",
	"Madagascar":             "MDG",
	"Malaysia":               "MYS",
	"Malta":                  "MLT",
	"Mauritania":             "MRT",
	"Mauritius":              "MUS",
	"Mexico":                 "MEX",
	"Moldova":                "MDA",
	"Mongolia":               "MNG",
	"Montenegro":             "MNE",
	"Morocco":                "MAR",
	"Mozambique":             "MOZ",
	"Myanmar":                "MMR",
	"Nepal":                  "NPL",
	"Netherlands":            "NLD",
	"New Zealand":            "NZL",
	"Nicaragua":              "NIC",
	"Nigeria":                "NGA",
	"North Korea":            "PRK",
	"North Macedonia":        "MKD",
	"Norway":                 "NOR",
	"Pakistan":               "PAK",
	"Palestine":              "PSE",
	"Panama":                 "PAN",
	"Paraguay":               "PRY",
	"Peru":                   "PER",
	"Philippines":            "PHL",
	"Poland":                 "POL",
	"Portugal":               "PRT",
	"Puerto Rico":            "PRI",
	"Qatar":                  "QAT",
	"Romania":                "ROU",
	"Russia":                 "RUS",
	"Rwanda":                 "RWA",
	"Saudi Arabia":           "SAU",
	"Senegal":                "SEN",
	"Serbia":                 "SRB",
	"Singapore":              "SGP",
	"Slovakia":               "SVK",
	"Slovenia":               "SVN",
	"South Africa":           "ZAF",
	"South Korea":            "KOR",
	"Spain":                  "ESP",
	"Sri Lanka":              "LKA",
	"Suriname":               "SUR",
	"Sweden":                 "SWE",
	"Switzerland":            "CHE",
	"Syria":                  "SYR",
	"Taiwan":                 "TWN",
	"Tajikistan":             "TJK",
	"Tanzania":               "TZA",
	"Thailand":               "THA",
	"Trinidad and Tobago":    "TTO",
	"Tunisia":                "TUN",
	"Turkey":                 "TUR",
	"Turkmenistan":           "TKM",
	"Uganda":                 "UGA",
	"Ukraine":                "UKR",
	"United Arab Emirates":   "ARE",
	"United Kingdom":         "GBR",
	"United States":          "USA",
	"Uruguay":                "URY",
	"Uzbekistan":             "UZB",
	"Venezuela":              "VEN",
	"Vietnam":                "VNM",
	"Zimbabwe":               "ZWE",
}

// alpha2 maps ISO3 codes to alpha-2 codes, used by the renderer for flag
// emoji display. XK is the user-assigned code for Kosovo.
var alpha2 = map[string]string{
	"AFG": "AF", "ALB": "AL", "ARE": "AE", "ARG": "AR", "ARM": "AM",
	"AUS": "AU", "AUT": "AT", "AZE": "AZ", "BEL": "BE", "BEN": "BJ",
	"BFA": "BF", "BGD": "BD", "BGR": "BG", "BHR": "BH", "BIH": "BA",
	"BLR": "BY", "BOL": "BO", "BRA": "BR", "BRN": "BN", "BWA": "BW",
	"CAN": "CA", "CHE": "CH", "CHL": "CL", "CHN": "CN", "CIV": "CI",
	"COL": "CO", "CRI": "CR", "CUB": "CU", "CYP": "CY", "CZE": "CZ",
	"DEU": "DE", "DNK": "DK", "DOM": "DO", "DZA": "DZ", "ECU": "EC",
	"EGY": "EG", "ESP": "ES", "EST": "EE", "FIN": "FI", "FRA": "FR",
	"GAB": "GA", "GBR": "GB", "GEO": "GE", "GHA": "GH", "GMB": "GM",
	"GRC": "GR", "GTM": "GT", "HKG": "HK", "HND": "HN", "HRV": "HR",
	"HUN": "HU", "IDN": "ID", "IND": "IN", "IRL": "IE", "IRN": "IR",
	"IRQ": "IQ", "ISL": "IS", "ISR": "IL", "ITA": "IT", "JOR": "JO",
	"JPN": "JP", "KAZ": "KZ", "KEN": "KE", "KGZ": "KG", "KHM": "KH",
	"KOR": "KR", "KSV": "XK", "KWT": "KW", "LAO": "LA", "LBY": "LY",
	"LIE": "LI", "LKA": "LK", "LTU": "LT", "LUX": "LU", "LVA": "LV",
	"MAC": "MO", "MAR": "MA", "MDA": "MD", "MDG": "MG", "MEX": "MX",
	"MKD": "MK", "MLT": "MT", "MMR": "MM", "MNE": "ME", "MNG": "MN",
	"MOZ": "MZ", "MRT": "MR", "MUS": "MU", "MYS": "MY", "NGA": "NG",
	"NIC": "NI", "NLD": "NL", "NOR": "NO", "NPL": "NP", "NZL": "NZ",
	"PAK": "PK", "PAN": "PA", "PER": "PE", "PHL": "PH", "POL": "PL",
	"PRI": "PR", "PRK": "KP", "PRT": "PT", "PRY": "PY", "PSE": "PS",
	"QAT": "QA", "ROU": "RO", "RUS": "RU", "RWA": "RW", "SAU": "SA",
	"SEN": "SN", "SGP": "SG", "SLV": "SV", "SRB": "RS", "SUR": "SR",
	"SVK": "SK", "SVN": "SI", "SWE": "SE", "SYR": "SY", "THA": "TH",
	"TJK": "TJ", "TKM": "TM", "TTO": "TT", "TUN": "TN", "TUR": "TR",
	"TWN": "TW", "TZA": "TZ", "UGA": "UG", "UKR": "UA", "URY": "UY",
	"USA": "US", "UZB": "UZ", "VEN": "VE", "VNM": "VN", "ZAF": "ZA",
	"ZWE": "ZW",
}
