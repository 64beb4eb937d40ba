// Package sentiment provides lexicon-based sentiment scoring for reflection responses.
package sentiment

// Word weights are fixed configuration, grouped by rough intensity band.
// The scorer treats these tables as read-only.

// positiveLexicon maps positive words to their base polarity weight (0, 1]
var positiveLexicon = map[string]float64{
	// High intensity
	"amazing": 0.9, "wonderful": 0.9, "excellent": 0.9, "fantastic": 0.9,
	"incredible": 0.9, "outstanding": 0.9, "brilliant": 0.9, "exceptional": 0.9,
	"thrilled": 0.95, "ecstatic": 0.95, "overjoyed": 0.95,

	// Medium intensity
	"happy": 0.7, "glad": 0.7, "pleased": 0.7, "satisfied": 0.7,
	"proud": 0.75, "confident": 0.7, "motivated": 0.7, "inspired": 0.75,
	"successful": 0.8, "accomplished": 0.8, "achieved": 0.8,
	"love": 0.8, "passionate": 0.8, "enjoy": 0.7, "excited": 0.75,
	"grateful": 0.75, "thankful": 0.75, "blessed": 0.7,
	"resilient": 0.7, "determined": 0.7, "focused": 0.65,
	"creative": 0.65, "innovative": 0.65, "productive": 0.65,

	// Low intensity
	"good": 0.5, "nice": 0.5, "fine": 0.4, "okay": 0.35, "ok": 0.35,
	"better": 0.5, "improved": 0.55, "learned": 0.5, "grew": 0.55,
	"interesting": 0.45, "helpful": 0.5, "useful": 0.45,
	"comfortable": 0.5, "calm": 0.5, "relaxed": 0.55,
}

// negativeLexicon maps negative words to their base polarity weight [-1, 0)
var negativeLexicon = map[string]float64{
	// High intensity
	"terrible": -0.9, "horrible": -0.9, "awful": -0.9, "devastating": -0.95,
	"miserable": -0.9, "hopeless": -0.9, "desperate": -0.85,
	"traumatic": -0.95, "unbearable": -0.9,

	// Medium intensity
	"sad": -0.7, "unhappy": -0.7, "depressed": -0.8, "disappointed": -0.7,
	"frustrated": -0.7, "angry": -0.75, "upset": -0.65,
	"stressed": -0.7, "anxious": -0.7, "worried": -0.65, "nervous": -0.6,
	"failed": -0.75, "failure": -0.75, "rejected": -0.7,
	"overwhelmed": -0.7, "exhausted": -0.65, "burned": -0.7,
	"struggled": -0.6, "difficult": -0.55, "challenging": -0.5,
	"lonely": -0.7, "isolated": -0.7, "hurt": -0.7,

	// Low intensity
	"bad": -0.5, "hard": -0.45, "tough": -0.45, "problem": -0.4,
	"issue": -0.35, "concern": -0.35, "doubt": -0.45,
	"confused": -0.45, "uncertain": -0.45, "stuck": -0.5,
	"tired": -0.4, "bored": -0.35,
}

// negationMarkers flip the polarity of a lexicon match inside the lookback window
var negationMarkers = map[string]bool{
	"not": true, "never": true, "no": true, "neither": true,
	"nobody": true, "nothing": true, "without": true, "n't": true,
}

// intensifiers multiply the magnitude of the immediately following match
var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.5, "incredibly": 1.5,
	"absolutely": 1.5, "totally": 1.3, "completely": 1.4,
}

// diminishers reduce the magnitude of the immediately following match
var diminishers = map[string]float64{
	"somewhat": 0.6, "slightly": 0.5, "barely": 0.4, "hardly": 0.4,
}

const (
	// negationLookback is the number of preceding tokens inspected for
	// negation markers before a lexicon match.
	negationLookback = 3

	// negationDamping reduces the magnitude of a flipped contribution,
	// since "not happy" is weaker than "sad".
	negationDamping = 0.7

	// Category thresholds are asymmetric: the negative threshold sits
	// closer to zero so borderline sessions classify as negative rather
	// than neutral.
	positiveThreshold = 0.15
	negativeThreshold = -0.10
)
