package story

// maxFillers caps how many filler sentences a story may receive.
const maxFillers = 10

// fillerSentences covers target words that no selected scene contains.
// Every template contains its key as a whole word.
var fillerSentences = map[string]string{
	"are":    "{name} and the dogs are best friends.",
	"ball":   "{name} threw the ball up high.",
	"bird":   "{name} heard a bird sing in the tree.",
	"black":  "{name} saw a black cat.",
	"brown":  "{name} saw a brown horse.",
	"cake":   "{name} had a piece of cake.",
	"come":   "{name} called the dog to come inside.",
	"do":     "{name} likes to do puzzles.",
	"eat":    "{name} likes to eat grapes.",
	"fast":   "{name} can run very fast.",
	"find":   "{name} can find the lost ball.",
	"fish":   "{name} saw a fish swim by.",
	"fly":    "{name} saw a bird fly by.",
	"four":   "{name} counted four red cars.",
	"frog":   "{name} saw a frog hop by the pond.",
	"have":   "{name} and Dad have fun together.",
	"he":     "{name} saw that he was happy.",
	"help":   "{name} likes to help at home.",
	"here":   "{name} said the toy was here.",
	"into":   "{name} jumped into a big pile of leaves.",
	"jump":   "{name} likes to jump in puddles.",
	"kite":   "{name} flew a kite in the wind.",
	"look":   "{name} went to look at the birds.",
	"me":     "{name} said, come play with me.",
	"must":   "{name} must wash before lunch.",
	"new":    "{name} got a new hat.",
	"no":     "{name} said no to more peas.",
	"open":   "{name} helped open the gate.",
	"our":    "{name} said this is our house.",
	"please": "{name} said please and thank you.",
	"pretty": "{name} saw a pretty flower.",
	"rain":   "{name} splashed in the rain.",
	"run":    "{name} can run and jump.",
	"she":    "{name} saw that she was kind.",
	"sing":   "{name} likes to sing a song.",
	"snow":   "{name} made a snowman in the snow.",
	"soon":   "{name} will visit the zoo soon.",
	"this":   "{name} said this is fun.",
	"tree":   "{name} sat under a big tree.",
	"we":     "{name} said we can play later.",
	"where":  "{name} asked where the cat was.",
	"who":    "{name} wanted to know who was at the door.",
	"why":    "{name} asked why the sky is blue.",
	"yes":    "{name} said yes to a new game.",
	"you":    "{name} said you are a good friend.",
	"zoo":    "{name} wants to visit the zoo.",
}

// fillerFor returns the filler template for word, if there is one.
func fillerFor(word string) (string, bool) {
	s, ok := fillerSentences[word]
	return s, ok
}
