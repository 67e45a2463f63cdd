package countries

// Country is one entry of the static dial-code reference list.
type Country struct {
	Name     string
	DialCode string
	Code     string
}

// All is the reference list backing the registration form's dial-code
// selector.
var All = []Country{
	{Name: "Afghanistan", DialCode: "+93", Code: "AF"},
	{Name: "Aland Islands", DialCode: "+358", Code: "AX"},
	{Name: "Albania", DialCode: "+355", Code: "AL"},
	{Name: "Algeria", DialCode: "+213", Code: "DZ"},
	{Name: "AmericanSamoa", DialCode: "+1684", Code: "AS"},
	{Name: "Andorra", DialCode: "+376", Code: "AD"},
	{Name: "Angola", DialCode: "+244", Code: "AO"},
	{Name: "Anguilla", DialCode: "+1264", Code: "AI"},
	{Name: "Antarctica", DialCode: "+672", Code: "AQ"},
	{Name: "Antigua and Barbuda", DialCode: "+1268", Code: "AG"},
	{Name: "Argentina", DialCode: "+54", Code: "AR"},
	{Name: "Armenia", DialCode: "+374", Code: "AM"},
	{Name: "Aruba", DialCode: "+297", Code: "AW"},
	{Name: "Australia", DialCode: "+61", Code: "AU"},
	{Name: "Austria", DialCode: "+43", Code: "AT"},
	{Name: "Azerbaijan", DialCode: "+994", Code: "AZ"},
	{Name: "Bahamas", DialCode: "+1242", Code: "BS"},
	{Name: "Bahrain", DialCode: "+973", Code: "BH"},
	{Name: "Bangladesh", DialCode: "+880", Code: "BD"},
	{Name: "Barbados", DialCode: "+1246", Code: "BB"},
	{Name: "Belarus", DialCode: "+375", Code: "BY"},
	{Name: "Belgium", DialCode: "+32", Code: "BE"},
	{Name: "Belize", DialCode: "+501", Code: "BZ"},
	{Name: "Benin", DialCode: "+229", Code: "BJ"},
	{Name: "Bermuda", DialCode: "+1441", Code: "BM"},
	{Name: "Bhutan", DialCode: "+975", Code: "BT"},
	{Name: "Bolivia, Plurinational State of", DialCode: "+591", Code: "BO"},
	{Name: "Bosnia and Herzegovina", DialCode: "+387", Code: "BA"},
	{Name: "Botswana", DialCode: "+267", Code: "BW"},
	{Name: "Brazil", DialCode: "+55", Code: "BR"},
	{Name: "British Indian Ocean Territory", DialCode: "+246", Code: "IO"},
	{Name: "Brunei Darussalam", DialCode: "+673", Code: "BN"},
	{Name: "Bulgaria", DialCode: "+359", Code: "BG"},
	{Name: "Burkina Faso", DialCode: "+226", Code: "BF"},
	{Name: "Burundi", DialCode: "+257", Code: "BI"},
	{Name: "Cambodia", DialCode: "+855", Code: "KH"},
	{Name: "Cameroon", DialCode: "+237", Code: "CM"},
	{Name: "Canada", DialCode: "+1", Code: "CA"},
	{Name: "Cape Verde", DialCode: "+238", Code: "CV"},
	{Name: "Cayman Islands", DialCode: "+1345", Code: "KY"},
	{Name: "Central African Republic", DialCode: "+236", Code: "CF"},
	{Name: "Chad", DialCode: "+235", Code: "TD"},
	{Name: "Chile", DialCode: "+56", Code: "CL"},
	{Name: "China", DialCode: "+86", Code: "CN"},
	{Name: "Christmas Island", DialCode: "+61", Code: "CX"},
	{Name: "Cocos (Keeling) Islands", DialCode: "+61", Code: "CC"},
	{Name: "Colombia", DialCode: "+57", Code: "CO"},
	{Name: "Comoros", DialCode: "+269", Code: "KM"},
	{Name: "Congo", DialCode: "+242", Code: "CG"},
	{Name: "Congo, The Democratic Republic of the", DialCode: "+243", Code: "CD"},
	{Name: "Cook Islands", DialCode: "+682", Code: "CK"},
	{Name: "Costa Rica", DialCode: "+506", Code: "CR"},
	{Name: "Cote d'Ivoire", DialCode: "+225", Code: "CI"},
	{Name: "Croatia", DialCode: "+385", Code: "HR"},
	{Name: "Cuba", DialCode: "+53", Code: "CU"},
	{Name: "Cyprus", DialCode: "+357", Code: "CY"},
	{Name: "Czech Republic", DialCode: "+420", Code: "CZ"},
	{Name: "Denmark", DialCode: "+45", Code: "DK"},
	{Name: "Djibouti", DialCode: "+253", Code: "DJ"},
	{Name: "Dominica", DialCode: "+1767", Code: "DM"},
	{Name: "Dominican Republic", DialCode: "+1849", Code: "DO"},
	{Name: "Ecuador", DialCode: "+593", Code: "EC"},
	{Name: "Egypt", DialCode: "+20", Code: "EG"},
	{Name: "El Salvador", DialCode: "+503", Code: "SV"},
	{Name: "Equatorial Guinea", DialCode: "+240", Code: "GQ"},
	{Name: "Eritrea", DialCode: "+291", Code: "ER"},
	{Name: "Estonia", DialCode: "+372", Code: "EE"},
	{Name: "Ethiopia", DialCode: "+251", Code: "ET"},
	{Name: "Falkland Islands (Malvinas)", DialCode: "+500", Code: "FK"},
	{Name: "Faroe Islands", DialCode: "+298", Code: "FO"},
	{Name: "Fiji", DialCode: "+679", Code: "FJ"},
	{Name: "Finland", DialCode: "+358", Code: "FI"},
	{Name: "France", DialCode: "+33", Code: "FR"},
	{Name: "French Guiana", DialCode: "+594", Code: "GF"},
	{Name: "French Polynesia", DialCode: "+689", Code: "PF"},
	{Name: "Gabon", DialCode: "+241", Code: "GA"},
	{Name: "Gambia", DialCode: "+220", Code: "GM"},
	{Name: "Georgia", DialCode: "+995", Code: "GE"},
	{Name: "Germany", DialCode: "+49", Code: "DE"},
	{Name: "Ghana", DialCode: "+233", Code: "GH"},
	{Name: "Gibraltar", DialCode: "+350", Code: "GI"},
	{Name: "Greece", DialCode: "+30", Code: "GR"},
	{Name: "Greenland", DialCode: "+299", Code: "GL"},
	{Name: "Grenada", DialCode: "+1473", Code: "GD"},
	{Name: "Guadeloupe", DialCode: "+590", Code: "GP"},
	{Name: "Guam", DialCode: "+1671", Code: "GU"},
	{Name: "Guatemala", DialCode: "+502", Code: "GT"},
	{Name: "Guernsey", DialCode: "+44", Code: "GG"},
	{Name: "Guinea", DialCode: "+224", Code: "GN"},
	{Name: "Guinea-Bissau", DialCode: "+245", Code: "GW"},
	{Name: "Guyana", DialCode: "+592", Code: "GY"},
	{Name: "Haiti", DialCode: "+509", Code: "HT"},
	{Name: "Holy See (Vatican City State)", DialCode: "+379", Code: "VA"},
	{Name: "Honduras", DialCode: "+504", Code: "HN"},
	{Name: "Hong Kong", DialCode: "+852", Code: "HK"},
	{Name: "Hungary", DialCode: "+36", Code: "HU"},
	{Name: "Iceland", DialCode: "+354", Code: "IS"},
	{Name: "India", DialCode: "+91", Code: "IN"},
	{Name: "Indonesia", DialCode: "+62", Code: "ID"},
	{Name: "Iran, Islamic Republic of", DialCode: "+98", Code: "IR"},
	{Name: "Iraq", DialCode: "+964", Code: "IQ"},
	{Name: "Ireland", DialCode: "+353", Code: "IE"},
	{Name: "Isle of Man", DialCode: "+44", Code: "IM"},
	{Name: "Israel", DialCode: "+972", Code: "IL"},
	{Name: "Italy", DialCode: "+39", Code: "IT"},
	{Name: "Jamaica", DialCode: "+1876", Code: "JM"},
	{Name: "Japan", DialCode: "+81", Code: "JP"},
	{Name: "Jersey", DialCode: "+44", Code: "JE"},
	{Name: "Jordan", DialCode: "+962", Code: "JO"},
	{Name: "Kazakhstan", DialCode: "+7", Code: "KZ"},
	{Name: "Kenya", DialCode: "+254", Code: "KE"},
	{Name: "Kiribati", DialCode: "+686", Code: "KI"},
	{Name: "Korea, Democratic People's Republic of", DialCode: "+850", Code: "KP"},
	{Name: "Korea, Republic of", DialCode: "+82", Code: "KR"},
	{Name: "Kuwait", DialCode: "+965", Code: "KW"},
	{Name: "Kyrgyzstan", DialCode: "+996", Code: "KG"},
	{Name: "Lao People's Democratic Republic", DialCode: "+856", Code: "LA"},
	{Name: "Latvia", DialCode: "+371", Code: "LV"},
	{Name: "Lebanon", DialCode: "+961", Code: "LB"},
	{Name: "Lesotho", DialCode: "+266", Code: "LS"},
	{Name: "Liberia", DialCode: "+231", Code: "LR"},
	{Name: "Libyan Arab Jamahiriya", DialCode: "+218", Code: "LY"},
	{Name: "Liechtenstein", DialCode: "+423", Code: "LI"},
	{Name: "Lithuania", DialCode: "+370", Code: "LT"},
	{Name: "Luxembourg", DialCode: "+352", Code: "LU"},
	{Name: "Macao", DialCode: "+853", Code: "MO"},
	{Name: "Macedonia, The Former Yugoslav Republic of", DialCode: "+389", Code: "MK"},
	{Name: "Madagascar", DialCode: "+261", Code: "MG"},
	{Name: "Malawi", DialCode: "+265", Code: "MW"},
	{Name: "Malaysia", DialCode: "+60", Code: "MY"},
	{Name: "Maldives", DialCode: "+960", Code: "MV"},
	{Name: "Mali", DialCode: "+223", Code: "ML"},
	{Name: "Malta", DialCode: "+356", Code: "MT"},
	{Name: "Marshall Islands", DialCode: "+692", Code: "MH"},
	{Name: "Martinique", DialCode: "+596", Code: "MQ"},
	{Name: "Mauritania", DialCode: "+222", Code: "MR"},
	{Name: "Mauritius", DialCode: "+230", Code: "MU"},
	{Name: "Mayotte", DialCode: "+262", Code: "YT"},
	{Name: "Mexico", DialCode: "+52", Code: "MX"},
	{Name: "Micronesia, Federated States of", DialCode: "+691", Code: "FM"},
	{Name: "Moldova, Republic of", DialCode: "+373", Code: "MD"},
	{Name: "Monaco", DialCode: "+377", Code: "MC"},
	{Name: "Mongolia", DialCode: "+976", Code: "MN"},
	{Name: "Montenegro", DialCode: "+382", Code: "ME"},
	{Name: "Montserrat", DialCode: "+1664", Code: "MS"},
	{Name: "Morocco", DialCode: "+212", Code: "MA"},
	{Name: "Mozambique", DialCode: "+258", Code: "MZ"},
	{Name: "Myanmar", DialCode: "+95", Code: "MM"},
	{Name: "Namibia", DialCode: "+264", Code: "NA"},
	{Name: "Nauru", DialCode: "+674", Code: "NR"},
	{Name: "Nepal", DialCode: "+977", Code: "NP"},
	{Name: "Netherlands", DialCode: "+31", Code: "NL"},
	{Name: "Netherlands Antilles", DialCode: "+599", Code: "AN"},
	{Name: "New Caledonia", DialCode: "+687", Code: "NC"},
	{Name: "New Zealand", DialCode: "+64", Code: "NZ"},
	{Name: "Nicaragua", DialCode: "+505", Code: "NI"},
	{Name: "Niger", DialCode: "+227", Code: "NE"},
	{Name: "Nigeria", DialCode: "+234", Code: "NG"},
	{Name: "Niue", DialCode: "+683", Code: "NU"},
	{Name: "Norfolk Island", DialCode: "+672", Code: "NF"},
	{Name: "Northern Mariana Islands", DialCode: "+1670", Code: "MP"},
	{Name: "Norway", DialCode: "+47", Code: "NO"},
	{Name: "Oman", DialCode: "+968", Code: "OM"},
	{Name: "Pakistan", DialCode: "+92", Code: "PK"},
	{Name: "Palau", DialCode: "+680", Code: "PW"},
	{Name: "Palestinian Territory, Occupied", DialCode: "+970", Code: "PS"},
	{Name: "Panama", DialCode: "+507", Code: "PA"},
	{Name: "Papua New Guinea", DialCode: "+675", Code: "PG"},
	{Name: "Paraguay", DialCode: "+595", Code: "PY"},
	{Name: "Peru", DialCode: "+51", Code: "PE"},
	{Name: "Philippines", DialCode: "+63", Code: "PH"},
	{Name: "Pitcairn", DialCode: "+872", Code: "PN"},
	{Name: "Poland", DialCode: "+48", Code: "PL"},
	{Name: "Portugal", DialCode: "+351", Code: "PT"},
	{Name: "Puerto Rico", DialCode: "+1939", Code: "PR"},
	{Name: "Qatar", DialCode: "+974", Code: "QA"},
	{Name: "Romania", DialCode: "+40", Code: "RO"},
	{Name: "Russia", DialCode: "+7", Code: "RU"},
	{Name: "Rwanda", DialCode: "+250", Code: "RW"},
	{Name: "Reunion", DialCode: "+262", Code: "RE"},
	{Name: "Saint Barthelemy", DialCode: "+590", Code: "BL"},
	{Name: "Saint Helena, Ascension and Tristan Da Cunha", DialCode: "+290", Code: "SH"},
	{Name: "Saint Kitts and Nevis", DialCode: "+1869", Code: "KN"},
	{Name: "Saint Lucia", DialCode: "+1758", Code: "LC"},
	{Name: "Saint Martin", DialCode: "+590", Code: "MF"},
	{Name: "Saint Pierre and Miquelon", DialCode: "+508", Code: "PM"},
	{Name: "Saint Vincent and the Grenadines", DialCode: "+1784", Code: "VC"},
	{Name: "Samoa", DialCode: "+685", Code: "WS"},
	{Name: "San Marino", DialCode: "+378", Code: "SM"},
	{Name: "Sao Tome and Principe", DialCode: "+239", Code: "ST"},
	{Name: "Saudi Arabia", DialCode: "+966", Code: "SA"},
	{Name: "Senegal", DialCode: "+221", Code: "SN"},
	{Name: "Serbia", DialCode: "+381", Code: "RS"},
	{Name: "Seychelles", DialCode: "+248", Code: "SC"},
	{Name: "Sierra Leone", DialCode: "+232", Code: "SL"},
	{Name: "Singapore", DialCode: "+65", Code: "SG"},
	{Name: "Slovakia", DialCode: "+421", Code: "SK"},
	{Name: "Slovenia", DialCode: "+386", Code: "SI"},
	{Name: "Solomon Islands", DialCode: "+677", Code: "SB"},
	{Name: "Somalia", DialCode: "+252", Code: "SO"},
	{Name: "South Africa", DialCode: "+27", Code: "ZA"},
	{Name: "South Sudan", DialCode: "+211", Code: "SS"},
	{Name: "Spain", DialCode: "+34", Code: "ES"},
	{Name: "Sri Lanka", DialCode: "+94", Code: "LK"},
	{Name: "Sudan", DialCode: "+249", Code: "SD"},
	{Name: "Suriname", DialCode: "+597", Code: "SR"},
	{Name: "Svalbard and Jan Mayen", DialCode: "+47", Code: "SJ"},
	{Name: "Swaziland", DialCode: "+268", Code: "SZ"},
	{Name: "Sweden", DialCode: "+46", Code: "SE"},
	{Name: "Switzerland", DialCode: "+41", Code: "CH"},
	{Name: "Syrian Arab Republic", DialCode: "+963", Code: "SY"},
	{Name: "Taiwan, Province of China", DialCode: "+886", Code: "TW"},
	{Name: "Tajikistan", DialCode: "+992", Code: "TJ"},
	{Name: "Tanzania, United Republic of", DialCode: "+255", Code: "TZ"},
	{Name: "Thailand", DialCode: "+66", Code: "TH"},
	{Name: "Timor-Leste", DialCode: "+670", Code: "TL"},
	{Name: "Togo", DialCode: "+228", Code: "TG"},
	{Name: "Tokelau", DialCode: "+690", Code: "TK"},
	{Name: "Tonga", DialCode: "+676", Code: "TO"},
	{Name: "Trinidad and Tobago", DialCode: "+1868", Code: "TT"},
	{Name: "Tunisia", DialCode: "+216", Code: "TN"},
	{Name: "Turkey", DialCode: "+90", Code: "TR"},
	{Name: "Turkmenistan", DialCode: "+993", Code: "TM"},
	{Name: "Turks and Caicos Islands", DialCode: "+1649", Code: "TC"},
	{Name: "Tuvalu", DialCode: "+688", Code: "TV"},
	{Name: "Uganda", DialCode: "+256", Code: "UG"},
	{Name: "Ukraine", DialCode: "+380", Code: "UA"},
	{Name: "United Arab Emirates", DialCode: "+971", Code: "AE"},
	{Name: "United Kingdom", DialCode: "+44", Code: "GB"},
	{Name: "United States", DialCode: "+1", Code: "US"},
	{Name: "Uruguay", DialCode: "+598", Code: "UY"},
	{Name: "Uzbekistan", DialCode: "+998", Code: "UZ"},
	{Name: "Vanuatu", DialCode: "+678", Code: "VU"},
	{Name: "Venezuela, Bolivarian Republic of", DialCode: "+58", Code: "VE"},
	{Name: "Viet Nam", DialCode: "+84", Code: "VN"},
	{Name: "Virgin Islands, British", DialCode: "+1284", Code: "VG"},
	{Name: "Virgin Islands, U.S.", DialCode: "+1340", Code: "VI"},
	{Name: "Wallis and Futuna", DialCode: "+681", Code: "WF"},
	{Name: "Yemen", DialCode: "+967", Code: "YE"},
	{Name: "Zambia", DialCode: "+260", Code: "ZM"},
	{Name: "Zimbabwe", DialCode: "+263", Code: "ZW"},
}
