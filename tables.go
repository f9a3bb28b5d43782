package celes

// countryTable holds every ISO 3166-1 entry in registration order. The order
// is load-bearing: the alias index keeps the first-registered record whenever
// an alias is shared, so entries must only ever be appended in order.
var countryTable = []Country{
	{Value: 4, Alpha2: "AF", Alpha3: "AFG", LongName: "Afghanistan"},
	{Value: 248, Alpha2: "AX", Alpha3: "ALA", LongName: "Aland Islands"},
	{Value: 8, Alpha2: "AL", Alpha3: "ALB", LongName: "Albania"},
	{Value: 12, Alpha2: "DZ", Alpha3: "DZA", LongName: "Algeria"},
	{Value: 16, Alpha2: "AS", Alpha3: "ASM", LongName: "American Samoa", Aliases: []string{"Samoa"}},
	{Value: 20, Alpha2: "AD", Alpha3: "AND", LongName: "Andorra"},
	{Value: 24, Alpha2: "AO", Alpha3: "AGO", LongName: "Angola"},
	{Value: 660, Alpha2: "AI", Alpha3: "AIA", LongName: "Anguilla"},
	{Value: 10, Alpha2: "AQ", Alpha3: "ATA", LongName: "Antarctica"},
	{Value: 28, Alpha2: "AG", Alpha3: "ATG", LongName: "Antigua And Barbuda"},
	{Value: 32, Alpha2: "AR", Alpha3: "ARG", LongName: "Argentina"},
	{Value: 51, Alpha2: "AM", Alpha3: "ARM", LongName: "Armenia"},
	{Value: 533, Alpha2: "AW", Alpha3: "ABW", LongName: "Aruba"},
	{Value: 654, Alpha2: "SH", Alpha3: "SHN", LongName: "Ascension And Tristan Da Cunha Saint Helena", Aliases: []string{"StHelena", "SaintHelena"}},
	{Value: 36, Alpha2: "AU", Alpha3: "AUS", LongName: "Australia"},
	{Value: 40, Alpha2: "AT", Alpha3: "AUT", LongName: "Austria"},
	{Value: 31, Alpha2: "AZ", Alpha3: "AZE", LongName: "Azerbaijan"},
	{Value: 48, Alpha2: "BH", Alpha3: "BHR", LongName: "Bahrain"},
	{Value: 50, Alpha2: "BD", Alpha3: "BGD", LongName: "Bangladesh"},
	{Value: 52, Alpha2: "BB", Alpha3: "BRB", LongName: "Barbados"},
	{Value: 112, Alpha2: "BY", Alpha3: "BLR", LongName: "Belarus"},
	{Value: 56, Alpha2: "BE", Alpha3: "BEL", LongName: "Belgium"},
	{Value: 84, Alpha2: "BZ", Alpha3: "BLZ", LongName: "Belize"},
	{Value: 204, Alpha2: "BJ", Alpha3: "BEN", LongName: "Benin"},
	{Value: 60, Alpha2: "BM", Alpha3: "BMU", LongName: "Bermuda"},
	{Value: 64, Alpha2: "BT", Alpha3: "BTN", LongName: "Bhutan"},
	{Value: 862, Alpha2: "VE", Alpha3: "VEN", LongName: "Bolivarian Republic Of Venezuela", Aliases: []string{"Venezuela"}},
	{Value: 68, Alpha2: "BO", Alpha3: "BOL", LongName: "Bolivia"},
	{Value: 535, Alpha2: "BQ", Alpha3: "BES", LongName: "Bonaire"},
	{Value: 70, Alpha2: "BA", Alpha3: "BIH", LongName: "Bosnia And Herzegovina", Aliases: []string{"Bosnia", "Herzegovina"}},
	{Value: 72, Alpha2: "BW", Alpha3: "BWA", LongName: "Botswana"},
	{Value: 74, Alpha2: "BV", Alpha3: "BVT", LongName: "Bouvet Island"},
	{Value: 76, Alpha2: "BR", Alpha3: "BRA", LongName: "Brazil"},
	{Value: 86, Alpha2: "IO", Alpha3: "IOT", LongName: "British Indian Ocean Territory"},
	{Value: 92, Alpha2: "VG", Alpha3: "VGB", LongName: "British Virgin Islands"},
	{Value: 96, Alpha2: "BN", Alpha3: "BRN", LongName: "Brunei Darussalam", Aliases: []string{"Brunei"}},
	{Value: 100, Alpha2: "BG", Alpha3: "BGR", LongName: "Bulgaria"},
	{Value: 854, Alpha2: "BF", Alpha3: "BFA", LongName: "Burkina Faso", Aliases: []string{"Burkina"}},
	{Value: 108, Alpha2: "BI", Alpha3: "BDI", LongName: "Burundi"},
	{Value: 132, Alpha2: "CV", Alpha3: "CPV", LongName: "Cabo Verde", Aliases: []string{"CaboVerde", "CapeVerde"}},
	{Value: 116, Alpha2: "KH", Alpha3: "KHM", LongName: "Cambodia"},
	{Value: 120, Alpha2: "CM", Alpha3: "CMR", LongName: "Cameroon"},
	{Value: 124, Alpha2: "CA", Alpha3: "CAN", LongName: "Canada"},
	{Value: 148, Alpha2: "TD", Alpha3: "TCD", LongName: "Chad"},
	{Value: 152, Alpha2: "CL", Alpha3: "CHL", LongName: "Chile"},
	{Value: 156, Alpha2: "CN", Alpha3: "CHN", LongName: "China"},
	{Value: 162, Alpha2: "CX", Alpha3: "CXR", LongName: "Christmas Island"},
	{Value: 170, Alpha2: "CO", Alpha3: "COL", LongName: "Colombia"},
	{Value: 188, Alpha2: "CR", Alpha3: "CRI", LongName: "Costa Rica"},
	{Value: 384, Alpha2: "CI", Alpha3: "CIV", LongName: "Coted Ivoire", Aliases: []string{"CoteDIvoire", "IvoryCoast"}},
	{Value: 191, Alpha2: "HR", Alpha3: "HRV", LongName: "Croatia"},
	{Value: 192, Alpha2: "CU", Alpha3: "CUB", LongName: "Cuba"},
	{Value: 531, Alpha2: "CW", Alpha3: "CUW", LongName: "Curacao"},
	{Value: 196, Alpha2: "CY", Alpha3: "CYP", LongName: "Cyprus"},
	{Value: 203, Alpha2: "CZ", Alpha3: "CZE", LongName: "Czechia", Aliases: []string{"CzechRepublic"}},
	{Value: 208, Alpha2: "DK", Alpha3: "DNK", LongName: "Denmark"},
	{Value: 262, Alpha2: "DJ", Alpha3: "DJI", LongName: "Djibouti"},
	{Value: 212, Alpha2: "DM", Alpha3: "DMA", LongName: "Dominica"},
	{Value: 534, Alpha2: "SX", Alpha3: "SXM", LongName: "Dutch Part Sint Maarten", Aliases: []string{"StMaarten", "SaintMaarten"}},
	{Value: 218, Alpha2: "EC", Alpha3: "ECU", LongName: "Ecuador"},
	{Value: 818, Alpha2: "EG", Alpha3: "EGY", LongName: "Egypt"},
	{Value: 222, Alpha2: "SV", Alpha3: "SLV", LongName: "El Salvador"},
	{Value: 226, Alpha2: "GQ", Alpha3: "GNQ", LongName: "Equatorial Guinea"},
	{Value: 232, Alpha2: "ER", Alpha3: "ERI", LongName: "Eritrea"},
	{Value: 233, Alpha2: "EE", Alpha3: "EST", LongName: "Estonia"},
	{Value: 748, Alpha2: "SZ", Alpha3: "SWZ", LongName: "Eswatini", Aliases: []string{"Eswatini", "Swaziland"}},
	{Value: 231, Alpha2: "ET", Alpha3: "ETH", LongName: "Ethiopia"},
	{Value: 583, Alpha2: "FM", Alpha3: "FSM", LongName: "Federated States Of Micronesia", Aliases: []string{"Micronesia"}},
	{Value: 242, Alpha2: "FJ", Alpha3: "FJI", LongName: "Fiji"},
	{Value: 246, Alpha2: "FI", Alpha3: "FIN", LongName: "Finland"},
	{Value: 250, Alpha2: "FR", Alpha3: "FRA", LongName: "France"},
	{Value: 254, Alpha2: "GF", Alpha3: "GUF", LongName: "French Guiana"},
	{Value: 663, Alpha2: "MF", Alpha3: "MAF", LongName: "French Part Saint Martin", Aliases: []string{"StMartin", "SaintMartin"}},
	{Value: 258, Alpha2: "PF", Alpha3: "PYF", LongName: "French Polynesia"},
	{Value: 266, Alpha2: "GA", Alpha3: "GAB", LongName: "Gabon"},
	{Value: 268, Alpha2: "GE", Alpha3: "GEO", LongName: "Georgia"},
	{Value: 276, Alpha2: "DE", Alpha3: "DEU", LongName: "Germany"},
	{Value: 288, Alpha2: "GH", Alpha3: "GHA", LongName: "Ghana"},
	{Value: 292, Alpha2: "GI", Alpha3: "GIB", LongName: "Gibraltar"},
	{Value: 300, Alpha2: "GR", Alpha3: "GRC", LongName: "Greece"},
	{Value: 304, Alpha2: "GL", Alpha3: "GRL", LongName: "Greenland"},
	{Value: 308, Alpha2: "GD", Alpha3: "GRD", LongName: "Grenada"},
	{Value: 312, Alpha2: "GP", Alpha3: "GLP", LongName: "Guadeloupe"},
	{Value: 316, Alpha2: "GU", Alpha3: "GUM", LongName: "Guam"},
	{Value: 320, Alpha2: "GT", Alpha3: "GTM", LongName: "Guatemala"},
	{Value: 831, Alpha2: "GG", Alpha3: "GGY", LongName: "Guernsey"},
	{Value: 324, Alpha2: "GN", Alpha3: "GIN", LongName: "Guinea"},
	{Value: 624, Alpha2: "GW", Alpha3: "GNB", LongName: "Guinea Bissau"},
	{Value: 328, Alpha2: "GY", Alpha3: "GUY", LongName: "Guyana"},
	{Value: 332, Alpha2: "HT", Alpha3: "HTI", LongName: "Haiti"},
	{Value: 334, Alpha2: "HM", Alpha3: "HMD", LongName: "Heard Island And Mc Donald Islands", Aliases: []string{"HeardIsland", "McDonaldIslands"}},
	{Value: 340, Alpha2: "HN", Alpha3: "HND", LongName: "Honduras"},
	{Value: 344, Alpha2: "HK", Alpha3: "HKG", LongName: "Hong Kong"},
	{Value: 348, Alpha2: "HU", Alpha3: "HUN", LongName: "Hungary"},
	{Value: 352, Alpha2: "IS", Alpha3: "ISL", LongName: "Iceland"},
	{Value: 356, Alpha2: "IN", Alpha3: "IND", LongName: "India"},
	{Value: 360, Alpha2: "ID", Alpha3: "IDN", LongName: "Indonesia"},
	{Value: 368, Alpha2: "IQ", Alpha3: "IRQ", LongName: "Iraq"},
	{Value: 372, Alpha2: "IE", Alpha3: "IRL", LongName: "Ireland"},
	{Value: 364, Alpha2: "IR", Alpha3: "IRN", LongName: "Islamic Republic Of Iran", Aliases: []string{"Iran"}},
	{Value: 833, Alpha2: "IM", Alpha3: "IMN", LongName: "Isle Of Man"},
	{Value: 376, Alpha2: "IL", Alpha3: "ISR", LongName: "Israel"},
	{Value: 380, Alpha2: "IT", Alpha3: "ITA", LongName: "Italy"},
	{Value: 388, Alpha2: "JM", Alpha3: "JAM", LongName: "Jamaica"},
	{Value: 392, Alpha2: "JP", Alpha3: "JPN", LongName: "Japan"},
	{Value: 832, Alpha2: "JE", Alpha3: "JEY", LongName: "Jersey"},
	{Value: 400, Alpha2: "JO", Alpha3: "JOR", LongName: "Jordan"},
	{Value: 398, Alpha2: "KZ", Alpha3: "KAZ", LongName: "Kazakhstan"},
	{Value: 404, Alpha2: "KE", Alpha3: "KEN", LongName: "Kenya"},
	{Value: 296, Alpha2: "KI", Alpha3: "KIR", LongName: "Kiribati"},
	{Value: 383, Alpha2: "XK", Alpha3: "XKX", LongName: "Kosovo"},
	{Value: 414, Alpha2: "KW", Alpha3: "KWT", LongName: "Kuwait"},
	{Value: 417, Alpha2: "KG", Alpha3: "KGZ", LongName: "Kyrgyzstan"},
	{Value: 428, Alpha2: "LV", Alpha3: "LVA", LongName: "Latvia"},
	{Value: 422, Alpha2: "LB", Alpha3: "LBN", LongName: "Lebanon"},
	{Value: 426, Alpha2: "LS", Alpha3: "LSO", LongName: "Lesotho"},
	{Value: 430, Alpha2: "LR", Alpha3: "LBR", LongName: "Liberia"},
	{Value: 434, Alpha2: "LY", Alpha3: "LBY", LongName: "Libya"},
	{Value: 438, Alpha2: "LI", Alpha3: "LIE", LongName: "Liechtenstein"},
	{Value: 440, Alpha2: "LT", Alpha3: "LTU", LongName: "Lithuania"},
	{Value: 442, Alpha2: "LU", Alpha3: "LUX", LongName: "Luxembourg"},
	{Value: 446, Alpha2: "MO", Alpha3: "MAC", LongName: "Macao", Aliases: []string{"Macau"}},
	{Value: 450, Alpha2: "MG", Alpha3: "MDG", LongName: "Madagascar"},
	{Value: 454, Alpha2: "MW", Alpha3: "MWI", LongName: "Malawi"},
	{Value: 458, Alpha2: "MY", Alpha3: "MYS", LongName: "Malaysia"},
	{Value: 462, Alpha2: "MV", Alpha3: "MDV", LongName: "Maldives"},
	{Value: 466, Alpha2: "ML", Alpha3: "MLI", LongName: "Mali"},
	{Value: 470, Alpha2: "MT", Alpha3: "MLT", LongName: "Malta"},
	{Value: 474, Alpha2: "MQ", Alpha3: "MTQ", LongName: "Martinique"},
	{Value: 478, Alpha2: "MR", Alpha3: "MRT", LongName: "Mauritania"},
	{Value: 480, Alpha2: "MU", Alpha3: "MUS", LongName: "Mauritius"},
	{Value: 175, Alpha2: "YT", Alpha3: "MYT", LongName: "Mayotte"},
	{Value: 484, Alpha2: "MX", Alpha3: "MEX", LongName: "Mexico"},
	{Value: 492, Alpha2: "MC", Alpha3: "MCO", LongName: "Monaco"},
	{Value: 496, Alpha2: "MN", Alpha3: "MNG", LongName: "Mongolia"},
	{Value: 499, Alpha2: "ME", Alpha3: "MNE", LongName: "Montenegro"},
	{Value: 500, Alpha2: "MS", Alpha3: "MSR", LongName: "Montserrat"},
	{Value: 504, Alpha2: "MA", Alpha3: "MAR", LongName: "Morocco"},
	{Value: 508, Alpha2: "MZ", Alpha3: "MOZ", LongName: "Mozambique"},
	{Value: 104, Alpha2: "MM", Alpha3: "MMR", LongName: "Myanmar", Aliases: []string{"Myanmar", "Burma"}},
	{Value: 516, Alpha2: "NA", Alpha3: "NAM", LongName: "Namibia"},
	{Value: 520, Alpha2: "NR", Alpha3: "NRU", LongName: "Nauru"},
	{Value: 524, Alpha2: "NP", Alpha3: "NPL", LongName: "Nepal"},
	{Value: 540, Alpha2: "NC", Alpha3: "NCL", LongName: "New Caledonia"},
	{Value: 554, Alpha2: "NZ", Alpha3: "NZL", LongName: "New Zealand"},
	{Value: 558, Alpha2: "NI", Alpha3: "NIC", LongName: "Nicaragua"},
	{Value: 566, Alpha2: "NG", Alpha3: "NGA", LongName: "Nigeria"},
	{Value: 570, Alpha2: "NU", Alpha3: "NIU", LongName: "Niue"},
	{Value: 574, Alpha2: "NF", Alpha3: "NFK", LongName: "Norfolk Island"},
	{Value: 578, Alpha2: "NO", Alpha3: "NOR", LongName: "Norway"},
	{Value: 512, Alpha2: "OM", Alpha3: "OMN", LongName: "Oman"},
	{Value: 586, Alpha2: "PK", Alpha3: "PAK", LongName: "Pakistan"},
	{Value: 585, Alpha2: "PW", Alpha3: "PLW", LongName: "Palau"},
	{Value: 591, Alpha2: "PA", Alpha3: "PAN", LongName: "Panama"},
	{Value: 598, Alpha2: "PG", Alpha3: "PNG", LongName: "Papua New Guinea"},
	{Value: 600, Alpha2: "PY", Alpha3: "PRY", LongName: "Paraguay"},
	{Value: 604, Alpha2: "PE", Alpha3: "PER", LongName: "Peru"},
	{Value: 612, Alpha2: "PN", Alpha3: "PCN", LongName: "Pitcairn"},
	{Value: 616, Alpha2: "PL", Alpha3: "POL", LongName: "Poland"},
	{Value: 620, Alpha2: "PT", Alpha3: "PRT", LongName: "Portugal"},
	{Value: 630, Alpha2: "PR", Alpha3: "PRI", LongName: "Puerto Rico"},
	{Value: 634, Alpha2: "QA", Alpha3: "QAT", LongName: "Qatar"},
	{Value: 807, Alpha2: "MK", Alpha3: "MKD", LongName: "Republic Of North Macedonia", Aliases: []string{"NorthMacedonia", "Macedonia"}},
	{Value: 638, Alpha2: "RE", Alpha3: "REU", LongName: "Reunion"},
	{Value: 642, Alpha2: "RO", Alpha3: "ROU", LongName: "Romania"},
	{Value: 646, Alpha2: "RW", Alpha3: "RWA", LongName: "Rwanda"},
	{Value: 652, Alpha2: "BL", Alpha3: "BLM", LongName: "Saint Barthelemy", Aliases: []string{"StBarthelemy"}},
	{Value: 659, Alpha2: "KN", Alpha3: "KNA", LongName: "Saint Kitts And Nevis", Aliases: []string{"StKitts"}},
	{Value: 662, Alpha2: "LC", Alpha3: "LCA", LongName: "Saint Lucia", Aliases: []string{"StLucia"}},
	{Value: 666, Alpha2: "PM", Alpha3: "SPM", LongName: "Saint Pierre And Miquelon", Aliases: []string{"StPierre", "SaintPierre"}},
	{Value: 670, Alpha2: "VC", Alpha3: "VCT", LongName: "Saint Vincent And The Grenadines", Aliases: []string{"StVincent", "SaintVincent"}},
	{Value: 882, Alpha2: "WS", Alpha3: "WSM", LongName: "Samoa"},
	{Value: 674, Alpha2: "SM", Alpha3: "SMR", LongName: "San Marino"},
	{Value: 678, Alpha2: "ST", Alpha3: "STP", LongName: "Sao Tome And Principe", Aliases: []string{"SaoTome"}},
	{Value: 682, Alpha2: "SA", Alpha3: "SAU", LongName: "Saudi Arabia"},
	{Value: 686, Alpha2: "SN", Alpha3: "SEN", LongName: "Senegal"},
	{Value: 688, Alpha2: "RS", Alpha3: "SRB", LongName: "Serbia"},
	{Value: 690, Alpha2: "SC", Alpha3: "SYC", LongName: "Seychelles"},
	{Value: 694, Alpha2: "SL", Alpha3: "SLE", LongName: "Sierra Leone"},
	{Value: 702, Alpha2: "SG", Alpha3: "SGP", LongName: "Singapore"},
	{Value: 703, Alpha2: "SK", Alpha3: "SVK", LongName: "Slovakia"},
	{Value: 705, Alpha2: "SI", Alpha3: "SVN", LongName: "Slovenia"},
	{Value: 90, Alpha2: "SB", Alpha3: "SLB", LongName: "Solomon Islands"},
	{Value: 706, Alpha2: "SO", Alpha3: "SOM", LongName: "Somalia"},
	{Value: 710, Alpha2: "ZA", Alpha3: "ZAF", LongName: "South Africa"},
	{Value: 239, Alpha2: "GS", Alpha3: "SGS", LongName: "South Georgia And The South Sandwich Islands", Aliases: []string{"SouthGeorgia", "SouthSandwichIslands"}},
	{Value: 728, Alpha2: "SS", Alpha3: "SSD", LongName: "South Sudan"},
	{Value: 724, Alpha2: "ES", Alpha3: "ESP", LongName: "Spain"},
	{Value: 144, Alpha2: "LK", Alpha3: "LKA", LongName: "Sri Lanka"},
	{Value: 275, Alpha2: "PS", Alpha3: "PSE", LongName: "State Of Palestine", Aliases: []string{"Palestine"}},
	{Value: 740, Alpha2: "SR", Alpha3: "SUR", LongName: "Suriname"},
	{Value: 744, Alpha2: "SJ", Alpha3: "SJM", LongName: "Svalbard And Jan Mayen"},
	{Value: 752, Alpha2: "SE", Alpha3: "SWE", LongName: "Sweden"},
	{Value: 756, Alpha2: "CH", Alpha3: "CHE", LongName: "Switzerland"},
	{Value: 760, Alpha2: "SY", Alpha3: "SYR", LongName: "Syrian Arab Republic", Aliases: []string{"Syria"}},
	{Value: 158, Alpha2: "TW", Alpha3: "TWN", LongName: "Taiwan, Republic Of China", Aliases: []string{"Taiwan"}},
	{Value: 762, Alpha2: "TJ", Alpha3: "TJK", LongName: "Tajikistan"},
	{Value: 764, Alpha2: "TH", Alpha3: "THA", LongName: "Thailand"},
	{Value: 44, Alpha2: "BS", Alpha3: "BHS", LongName: "The Bahamas", Aliases: []string{"Bahamas"}},
	{Value: 136, Alpha2: "KY", Alpha3: "CYM", LongName: "The Cayman Islands", Aliases: []string{"CaymanIslands"}},
	{Value: 140, Alpha2: "CF", Alpha3: "CAF", LongName: "The Central African Republic", Aliases: []string{"CentralAfricanRepublic"}},
	{Value: 166, Alpha2: "CC", Alpha3: "CCK", LongName: "The Cocos Keeling Islands", Aliases: []string{"CocosIslands", "KeelingIslands"}},
	{Value: 174, Alpha2: "KM", Alpha3: "COM", LongName: "The Comoros", Aliases: []string{"Comoros"}},
	{Value: 178, Alpha2: "CG", Alpha3: "COG", LongName: "The Congo", Aliases: []string{"Congo"}},
	{Value: 184, Alpha2: "CK", Alpha3: "COK", LongName: "The Cook Islands", Aliases: []string{"CookIslands"}},
	{Value: 408, Alpha2: "KP", Alpha3: "PRK", LongName: "The Democratic Peoples Republic Of Korea", Aliases: []string{"NorthKorea", "DemocraticPeoplesRepublicOfKorea"}},
	{Value: 180, Alpha2: "CD", Alpha3: "COD", LongName: "The Democratic Republic Of The Congo", Aliases: []string{"DemocraticRepublicOfTheCongo"}},
	{Value: 214, Alpha2: "DO", Alpha3: "DOM", LongName: "The Dominican Republic", Aliases: []string{"DominicanRepublic"}},
	{Value: 238, Alpha2: "FK", Alpha3: "FLK", LongName: "The Falkland Islands Malvinas", Aliases: []string{"Malvinas", "FalklandIslands"}},
	{Value: 234, Alpha2: "FO", Alpha3: "FRO", LongName: "The Faroe Islands", Aliases: []string{"FaroeIslands"}},
	{Value: 260, Alpha2: "TF", Alpha3: "ATF", LongName: "The French Southern Territories", Aliases: []string{"FrenchSouthernTerritories"}},
	{Value: 270, Alpha2: "GM", Alpha3: "GMB", LongName: "The Gambia", Aliases: []string{"Gambia"}},
	{Value: 336, Alpha2: "VA", Alpha3: "VAT", LongName: "The Holy See", Aliases: []string{"HolySee", "Vatican", "VaticanCity"}},
	{Value: 418, Alpha2: "LA", Alpha3: "LAO", LongName: "The Lao Peoples Democratic Republic", Aliases: []string{"LaoPeoplesDemocraticRepublic", "Laos"}},
	{Value: 584, Alpha2: "MH", Alpha3: "MHL", LongName: "The Marshall Islands", Aliases: []string{"MarshallIslands"}},
	{Value: 528, Alpha2: "NL", Alpha3: "NLD", LongName: "The Netherlands", Aliases: []string{"Netherlands", "Holland"}},
	{Value: 562, Alpha2: "NE", Alpha3: "NER", LongName: "The Niger", Aliases: []string{"Niger"}},
	{Value: 580, Alpha2: "MP", Alpha3: "MNP", LongName: "The Northern Mariana Islands", Aliases: []string{"NorthernMarianaIslands"}},
	{Value: 608, Alpha2: "PH", Alpha3: "PHL", LongName: "The Philippines", Aliases: []string{"Philippines"}},
	{Value: 410, Alpha2: "KR", Alpha3: "KOR", LongName: "The Republic Of Korea", Aliases: []string{"SouthKorea", "RepublicOfKorea"}},
	{Value: 498, Alpha2: "MD", Alpha3: "MDA", LongName: "The Republic Of Moldova", Aliases: []string{"Moldova", "RepublicOfMoldova"}},
	{Value: 643, Alpha2: "RU", Alpha3: "RUS", LongName: "The Russian Federation", Aliases: []string{"Russia", "RussianFederation"}},
	{Value: 729, Alpha2: "SD", Alpha3: "SDN", LongName: "The Sudan", Aliases: []string{"Sudan"}},
	{Value: 796, Alpha2: "TC", Alpha3: "TCA", LongName: "The Turks And Caicos Islands", Aliases: []string{"TurksAndCaicosIslands"}},
	{Value: 784, Alpha2: "AE", Alpha3: "ARE", LongName: "The United Arab Emirates", Aliases: []string{"UnitedArabEmirates"}},
	{Value: 826, Alpha2: "GB", Alpha3: "GBR", LongName: "The United Kingdom Of Great Britain And Northern Ireland", Aliases: []string{"England", "Scotland", "GreatBritain", "UnitedKingdom", "NorthernIreland", "UnitedKingdomOfGreatBritain", "UnitedKingdomOfGreatBritainAndNorthernIreland"}},
	{Value: 581, Alpha2: "UM", Alpha3: "UMI", LongName: "The United States Minor Outlying Islands", Aliases: []string{"UnitedStatesMinorOutlyingIslands"}},
	{Value: 840, Alpha2: "US", Alpha3: "USA", LongName: "The United States Of America", Aliases: []string{"America", "UnitedStates", "UnitedStatesOfAmerica"}},
	{Value: 626, Alpha2: "TL", Alpha3: "TLS", LongName: "Timor Leste", Aliases: []string{"EastTimor"}},
	{Value: 768, Alpha2: "TG", Alpha3: "TGO", LongName: "Togo"},
	{Value: 772, Alpha2: "TK", Alpha3: "TKL", LongName: "Tokelau"},
	{Value: 776, Alpha2: "TO", Alpha3: "TON", LongName: "Tonga"},
	{Value: 780, Alpha2: "TT", Alpha3: "TTO", LongName: "Trinidad And Tobago", Aliases: []string{"Trinidad", "Tobago"}},
	{Value: 788, Alpha2: "TN", Alpha3: "TUN", LongName: "Tunisia"},
	{Value: 792, Alpha2: "TR", Alpha3: "TUR", LongName: "Türkiye", Aliases: []string{"Turkiye", "Turkey"}},
	{Value: 795, Alpha2: "TM", Alpha3: "TKM", LongName: "Turkmenistan"},
	{Value: 798, Alpha2: "TV", Alpha3: "TUV", LongName: "Tuvalu"},
	{Value: 850, Alpha2: "VI", Alpha3: "VIR", LongName: "US Virgin Islands"},
	{Value: 800, Alpha2: "UG", Alpha3: "UGA", LongName: "Uganda"},
	{Value: 804, Alpha2: "UA", Alpha3: "UKR", LongName: "Ukraine"},
	{Value: 834, Alpha2: "TZ", Alpha3: "TZA", LongName: "United Republic Of Tanzania", Aliases: []string{"Tanzania"}},
	{Value: 858, Alpha2: "UY", Alpha3: "URY", LongName: "Uruguay"},
	{Value: 860, Alpha2: "UZ", Alpha3: "UZB", LongName: "Uzbekistan"},
	{Value: 548, Alpha2: "VU", Alpha3: "VUT", LongName: "Vanuatu"},
	{Value: 704, Alpha2: "VN", Alpha3: "VNM", LongName: "Vietnam"},
	{Value: 876, Alpha2: "WF", Alpha3: "WLF", LongName: "Wallis And Futuna"},
	{Value: 732, Alpha2: "EH", Alpha3: "ESH", LongName: "Western Sahara"},
	{Value: 887, Alpha2: "YE", Alpha3: "YEM", LongName: "Yemen"},
	{Value: 894, Alpha2: "ZM", Alpha3: "ZMB", LongName: "Zambia"},
	{Value: 716, Alpha2: "ZW", Alpha3: "ZWE", LongName: "Zimbabwe"},
}
