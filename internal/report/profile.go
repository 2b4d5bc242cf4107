// Package report turns a scored result into respondent-facing copy:
// the sixteen type profiles and the plain-text rendering the headless
// commands print.
package report

// TypeProfile is the static description shown for one four-letter type.
type TypeProfile struct {
	Code    string
	Title   string
	Summary string
	Traits  []string
}

// ProfileFor returns the profile for a four-letter type code.
func ProfileFor(code string) (TypeProfile, bool) {
	p, ok := profiles[code]
	return p, ok
}

var profiles = map[string]TypeProfile{
	"ISTJ": {
		Code:    "ISTJ",
		Title:   "The Inspector",
		Summary: "Practical and fact-minded. Values order, follows through on commitments, and trusts direct experience over speculation.",
		Traits:  []string{"thorough", "dependable", "systematic", "reserved"},
	},
	"ISFJ": {
		Code:    "ISFJ",
		Title:   "The Protector",
		Summary: "Warm and conscientious. Remembers the details that matter to people and works steadily behind the scenes to keep things running.",
		Traits:  []string{"considerate", "loyal", "meticulous", "patient"},
	},
	"INFJ": {
		Code:    "INFJ",
		Title:   "The Counselor",
		Summary: "Insightful and principled. Seeks meaning in ideas and relationships, and quietly organizes life around a long-term vision.",
		Traits:  []string{"insightful", "idealistic", "private", "decisive"},
	},
	"INTJ": {
		Code:    "INTJ",
		Title:   "The Mastermind",
		Summary: "Independent and strategic. Forms a long-range view quickly and holds both self and others to high standards of competence.",
		Traits:  []string{"strategic", "independent", "skeptical", "driven"},
	},
	"ISTP": {
		Code:    "ISTP",
		Title:   "The Craftsman",
		Summary: "Observant and hands-on. Stays detached until action is needed, then troubleshoots with speed and economy of effort.",
		Traits:  []string{"pragmatic", "adaptable", "analytical", "reserved"},
	},
	"ISFP": {
		Code:    "ISFP",
		Title:   "The Composer",
		Summary: "Gentle and present-focused. Expresses values through action rather than argument and needs room to work at an unhurried pace.",
		Traits:  []string{"easygoing", "sensitive", "loyal", "modest"},
	},
	"INFP": {
		Code:    "INFP",
		Title:   "The Healer",
		Summary: "Idealistic and adaptable. Guided by an inner sense of what matters, curious about possibilities for people, and loyal to a few deep commitments.",
		Traits:  []string{"empathetic", "imaginative", "flexible", "reflective"},
	},
	"INTP": {
		Code:    "INTP",
		Title:   "The Architect",
		Summary: "Analytical and detached. Driven to find the underlying principle in everything, more interested in ideas than in their application.",
		Traits:  []string{"logical", "curious", "abstract", "independent"},
	},
	"ESTP": {
		Code:    "ESTP",
		Title:   "The Dynamo",
		Summary: "Energetic and tactical. Learns by doing, reads situations fast, and prefers solving the problem in front of them to theorizing about it.",
		Traits:  []string{"spontaneous", "resourceful", "direct", "observant"},
	},
	"ESFP": {
		Code:    "ESFP",
		Title:   "The Performer",
		Summary: "Outgoing and accepting. Brings warmth and realism to whatever is happening now, and makes work more fun for everyone around.",
		Traits:  []string{"enthusiastic", "friendly", "practical", "adaptable"},
	},
	"ENFP": {
		Code:    "ENFP",
		Title:   "The Champion",
		Summary: "Imaginative and enthusiastic. Sees possibilities everywhere, connects ideas and people readily, and improvises rather than plans.",
		Traits:  []string{"energetic", "expressive", "inventive", "spontaneous"},
	},
	"ENTP": {
		Code:    "ENTP",
		Title:   "The Visionary",
		Summary: "Quick and outspoken. Enjoys the argument as much as the answer, bores easily with routine, and keeps finding new angles on old problems.",
		Traits:  []string{"inventive", "outspoken", "analytical", "restless"},
	},
	"ESTJ": {
		Code:    "ESTJ",
		Title:   "The Supervisor",
		Summary: "Decisive and organized. Takes charge of getting things done, values clear standards, and judges by results.",
		Traits:  []string{"organized", "direct", "responsible", "practical"},
	},
	"ESFJ": {
		Code:    "ESFJ",
		Title:   "The Provider",
		Summary: "Sociable and dutiful. Attentive to what others need day to day, and works hard to create harmony and order in their circle.",
		Traits:  []string{"warm", "cooperative", "conscientious", "sociable"},
	},
	"ENFJ": {
		Code:    "ENFJ",
		Title:   "The Teacher",
		Summary: "Expressive and empathetic. Reads the room effortlessly, draws out the potential in others, and organizes people around shared goals.",
		Traits:  []string{"persuasive", "supportive", "organized", "idealistic"},
	},
	"ENTJ": {
		Code:    "ENTJ",
		Title:   "The Commander",
		Summary: "Frank and strategic. Spots inefficiency on sight, enjoys long-range planning, and naturally takes the lead when direction is missing.",
		Traits:  []string{"assertive", "strategic", "efficient", "confident"},
	},
}
