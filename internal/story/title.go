package story

import "strings"

type titleRule struct {
	keywords []string
	title    string
}

// titleRules are checked in order; the first rule whose keyword appears in
// any selected scene id wins.
var titleRules = []titleRule{
	{keywords: []string{"bike", "ride"}, title: "A Bike Ride Adventure"},
	{keywords: []string{"park"}, title: "A Day at the Park"},
	{keywords: []string{"school", "learn"}, title: "A School Day Adventure"},
	{keywords: []string{"friend", "play-together"}, title: "A Day with Friends"},
}

var genericTitles = []string{
	"A Fun Day",
	"A Great Day",
	"My Busy Day",
	"A Day to Remember",
}

func chooseTitle(sceneIDs []string, rng Randomizer) string {
	for _, rule := range titleRules {
		for _, id := range sceneIDs {
			for _, kw := range rule.keywords {
				if strings.Contains(id, kw) {
					return rule.title
				}
			}
		}
	}
	return pick(rng, genericTitles)
}
