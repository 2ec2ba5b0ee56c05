// Package refdata holds the static shared tables used across taxonomy
// builds: the HS chapter-to-section assignment, section ordering, and the
// fuzzy matcher's stop-word set. All values are read-only; builders receive
// them explicitly rather than reaching for globals.
package refdata

// ChapterSection assigns each 2-digit HS chapter to its Roman-numeral
// section. Chapters 98-99 are national-use chapters grouped under the
// special section XXII.
var ChapterSection = map[string]string{
	"01": "I", "02": "I", "03": "I", "04": "I", "05": "I",
	"06": "II", "07": "II", "08": "II", "09": "II", "10": "II",
	"11": "II", "12": "II", "13": "II", "14": "II",
	"15": "III",
	"16": "IV", "17": "IV", "18": "IV", "19": "IV", "20": "IV",
	"21": "IV", "22": "IV", "23": "IV", "24": "IV",
	"25": "V", "26": "V", "27": "V",
	"28": "VI", "29": "VI", "30": "VI", "31": "VI", "32": "VI",
	"33": "VI", "34": "VI", "35": "VI", "36": "VI", "37": "VI", "38": "VI",
	"39": "VII", "40": "VII",
	"41": "VIII", "42": "VIII", "43": "VIII",
	"44": "IX", "45": "IX", "46": "IX",
	"47": "X", "48": "X", "49": "X",
	"50": "XI", "51": "XI", "52": "XI", "53": "XI", "54": "XI",
	"55": "XI", "56": "XI", "57": "XI", "58": "XI", "59": "XI",
	"60": "XI", "61": "XI", "62": "XI", "63": "XI",
	"64": "XII", "65": "XII", "66": "XII", "67": "XII",
	"68": "XIII", "69": "XIII", "70": "XIII",
	"71": "XIV",
	"72": "XV", "73": "XV", "74": "XV", "75": "XV", "76": "XV",
	"78": "XV", "79": "XV", "80": "XV", "81": "XV", "82": "XV", "83": "XV",
	"84": "XVI", "85": "XVI",
	"86": "XVII", "87": "XVII", "88": "XVII", "89": "XVII",
	"90": "XVIII", "91": "XVIII", "92": "XVIII",
	"93": "XIX",
	"94": "XX", "95": "XX", "96": "XX",
	"97": "XXI",
	"98": "XXII", "99": "XXII",
}

// SpecialSectionCode is the national-use section that may be absent from a
// published section table and is created on demand.
const SpecialSectionCode = "XXII"

// SpecialSectionName names the national-use section for chapters 98-99.
const SpecialSectionName = "Special Classification Provisions"
