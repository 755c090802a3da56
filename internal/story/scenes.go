package story

// defaultScenes is the authored scene library. Declaration order matters:
// ties in scene scoring go to the scene declared first.
var defaultScenes = []Scene{
	// --- wake-up ---
	{
		ID:        "wake-sunny-morning",
		Phase:     PhaseWakeUp,
		Setting:   SettingHome,
		Sentences: []string{"{name} woke up and saw the sun.", "It was a good day to play."},
		Words:     []string{"woke", "up", "and", "saw", "the", "sun", "it", "was", "a", "good", "day", "to", "play"},
	},
	{
		ID:        "wake-dog-licks",
		Phase:     PhaseWakeUp,
		Setting:   SettingHome,
		Sentences: []string{"The little dog jumped on the bed.", "{name} woke up with a big smile."},
		Words:     []string{"the", "little", "dog", "jumped", "on", "bed", "woke", "up", "with", "a", "big", "smile"},
	},
	{
		ID:        "wake-alarm-clock",
		Phase:     PhaseWakeUp,
		Setting:   SettingHome,
		Sentences: []string{"{name} can hear the clock ring.", "Now it is time to get up."},
		Words:     []string{"can", "hear", "the", "clock", "ring", "now", "it", "is", "time", "to", "get", "up"},
	},

	// --- breakfast ---
	{
		ID:        "breakfast-eggs-toast",
		Phase:     PhaseBreakfast,
		Setting:   SettingHome,
		Sentences: []string{"Mom made eggs and toast for {name}.", "{name} ate it all up."},
		Words:     []string{"mom", "made", "eggs", "and", "toast", "for", "ate", "it", "all", "up"},
	},
	{
		ID:        "breakfast-cereal-milk",
		Phase:     PhaseBreakfast,
		Setting:   SettingHome,
		Sentences: []string{"{name} had a bowl of cereal with milk.", "The milk was cold and white."},
		Words:     []string{"had", "a", "bowl", "of", "with", "milk", "the", "was", "cold", "and", "white"},
	},
	{
		ID:        "breakfast-pancakes",
		Phase:     PhaseBreakfast,
		Setting:   SettingHome,
		Sentences: []string{"Dad made pancakes for breakfast.", "{name} said thank you and ate three."},
		Words:     []string{"dad", "made", "pancakes", "for", "breakfast", "said", "thank", "you", "and", "ate", "three"},
	},

	// --- leave home ---
	{
		ID:        "leave-get-dressed",
		Phase:     PhaseLeaveHome,
		Setting:   SettingHome,
		Sentences: []string{"{name} put on a red shirt and blue shoes.", "Then {name} brushed teeth and combed hair."},
		Words:     []string{"put", "on", "a", "red", "shirt", "and", "blue", "shoes", "then"},
	},
	{
		ID:        "leave-pack-bag",
		Phase:     PhaseLeaveHome,
		Setting:   SettingHome,
		Sentences: []string{"{name} put a book and an apple in the bag.", "It was time to go."},
		Words:     []string{"put", "a", "book", "and", "an", "apple", "in", "the", "bag", "it", "was", "time", "to", "go"},
	},
	{
		ID:        "leave-say-goodbye",
		Phase:     PhaseLeaveHome,
		Setting:   SettingHome,
		Sentences: []string{"{name} gave the cat a hug.", "Then {name} said goodbye and went out the door."},
		Words:     []string{"gave", "the", "cat", "a", "hug", "then", "said", "goodbye", "and", "went", "out", "door"},
	},

	// --- morning activity ---
	{
		ID:        "school-reading-circle",
		Phase:     PhaseMorningActivity,
		Setting:   SettingSchool,
		Sentences: []string{"At school, the teacher read a funny book.", "{name} sat down to listen and learn."},
		Words:     []string{"at", "school", "the", "teacher", "read", "a", "funny", "book", "sat", "down", "to", "listen", "and", "learn"},
	},
	{
		ID:        "park-walk-dog",
		Phase:     PhaseMorningActivity,
		Setting:   SettingPark,
		Sentences: []string{"{name} took the dog for a walk to the park.", "The dog was happy and ran in the grass."},
		Words:     []string{"took", "the", "dog", "for", "a", "walk", "to", "park", "was", "happy", "and", "ran", "in", "grass"},
	},
	{
		ID:        "store-shopping-trip",
		Phase:     PhaseMorningActivity,
		Setting:   SettingStore,
		Sentences: []string{"{name} went to the store with Dad.", "They got milk, bread, and yellow bananas."},
		Words:     []string{"went", "to", "the", "store", "with", "dad", "they", "got", "milk", "bread", "and", "yellow"},
	},
	{
		ID:        "bike-ride-street",
		Phase:     PhaseMorningActivity,
		Setting:   SettingOutside,
		Sentences: []string{"{name} got on a blue bike to ride.", "{name} went fast down the street."},
		Words:     []string{"got", "on", "a", "blue", "bike", "to", "ride", "went", "fast", "down", "the", "street"},
	},

	// --- midday activity ---
	{
		ID:        "park-swings-slide",
		Phase:     PhaseMiddayActivity,
		Setting:   SettingPark,
		Sentences: []string{"At the park, {name} went down the big slide.", "Then {name} jumped on the swings."},
		Words:     []string{"at", "the", "park", "went", "down", "big", "slide", "then", "jumped", "on", "swings"},
	},
	{
		ID:        "friend-play-together-tag",
		Phase:     PhaseMiddayActivity,
		Setting:   SettingOutside,
		Sentences: []string{"{name} and a friend played tag.", "They ran and ran in the sun."},
		Words:     []string{"and", "a", "friend", "played", "tag", "they", "ran", "in", "the", "sun"},
	},
	{
		ID:        "school-learn-numbers",
		Phase:     PhaseMiddayActivity,
		Setting:   SettingSchool,
		Sentences: []string{"The class learned to count one, two, three.", "{name} can count to ten now."},
		Words:     []string{"the", "class", "learned", "to", "count", "one", "two", "three", "can", "ten", "now"},
	},
	{
		ID:        "outside-bug-hunt",
		Phase:     PhaseMiddayActivity,
		Setting:   SettingOutside,
		Sentences: []string{"{name} found a little bug under a rock.", "It was green and very small."},
		Words:     []string{"found", "a", "little", "bug", "under", "rock", "it", "was", "green", "and", "very", "small"},
	},

	// --- afternoon activity ---
	{
		ID:        "friend-build-blocks",
		Phase:     PhaseAfternoonActivity,
		Setting:   SettingHome,
		Sentences: []string{"{name} and a friend made a tall tower.", "It fell down, so they made it again."},
		Words:     []string{"and", "a", "friend", "made", "tall", "tower", "it", "fell", "down", "so", "they", "again"},
	},
	{
		ID:        "park-pond-ducks",
		Phase:     PhaseAfternoonActivity,
		Setting:   SettingPark,
		Sentences: []string{"{name} saw five ducks at the park pond.", "{name} gave them some bread."},
		Words:     []string{"saw", "five", "ducks", "at", "the", "park", "pond", "gave", "them", "some", "bread"},
	},
	{
		ID:        "bike-ride-hill",
		Phase:     PhaseAfternoonActivity,
		Setting:   SettingOutside,
		Sentences: []string{"{name} and Dad went for a bike ride.", "They rode up and down the hill."},
		Words:     []string{"and", "dad", "went", "for", "a", "bike", "ride", "they", "rode", "up", "down", "the", "hill"},
	},
	{
		ID:        "home-draw-picture",
		Phase:     PhaseAfternoonActivity,
		Setting:   SettingHome,
		Sentences: []string{"{name} sat at the table to draw.", "{name} made a yellow sun and a blue sky."},
		Words:     []string{"sat", "at", "the", "table", "to", "draw", "made", "a", "yellow", "sun", "and", "blue", "sky"},
	},

	// --- snack ---
	{
		ID:        "snack-apple-slices",
		Phase:     PhaseSnack,
		Setting:   SettingAnywhere,
		Sentences: []string{"{name} ate a red apple for a snack.", "It was sweet and good."},
		Words:     []string{"ate", "a", "red", "apple", "for", "snack", "it", "was", "sweet", "and", "good"},
	},
	{
		ID:        "snack-juice-cookies",
		Phase:     PhaseSnack,
		Setting:   SettingAnywhere,
		Sentences: []string{"{name} had two cookies and some juice.", "Yum, that was so good!"},
		Words:     []string{"had", "two", "cookies", "and", "some", "juice", "yum", "that", "was", "so", "good"},
	},

	// --- return home ---
	{
		ID:        "return-walk-home",
		Phase:     PhaseReturnHome,
		Setting:   SettingOutside,
		Sentences: []string{"{name} walked home with Mom.", "The sky was pink and orange."},
		Words:     []string{"walked", "home", "with", "mom", "the", "sky", "was", "pink", "and", "orange"},
	},
	{
		ID:        "return-bus-trip",
		Phase:     PhaseReturnHome,
		Setting:   SettingOutside,
		Sentences: []string{"{name} rode the bus back home.", "{name} looked out the window."},
		Words:     []string{"rode", "the", "bus", "back", "home", "looked", "out", "window"},
	},
	{
		ID:        "return-wash-hands",
		Phase:     PhaseReturnHome,
		Setting:   SettingHome,
		Sentences: []string{"When {name} got home, it was time to wash up.", "The soap made lots of bubbles."},
		Words:     []string{"when", "got", "home", "it", "was", "time", "to", "wash", "up", "the", "soap", "made", "of"},
	},

	// --- dinner ---
	{
		ID:        "dinner-family-table",
		Phase:     PhaseDinner,
		Setting:   SettingHome,
		Sentences: []string{"{name} ate dinner with the family.", "Everyone said what they liked best about the day."},
		Words:     []string{"ate", "dinner", "with", "the", "family", "said", "what", "they", "best", "about", "day"},
	},
	{
		ID:        "dinner-help-cook",
		Phase:     PhaseDinner,
		Setting:   SettingHome,
		Sentences: []string{"{name} helped Dad make soup.", "{name} put the bowls on the table."},
		Words:     []string{"helped", "dad", "make", "soup", "put", "the", "bowls", "on", "table"},
	},

	// --- bedtime ---
	{
		ID:        "bedtime-story-sleep",
		Phase:     PhaseBedtime,
		Setting:   SettingHome,
		Sentences: []string{"{name} got into bed and read a book.", "Then {name} went to sleep."},
		Words:     []string{"got", "into", "bed", "and", "read", "a", "book", "then", "went", "to", "sleep"},
	},
	{
		ID:        "bedtime-bath-pajamas",
		Phase:     PhaseBedtime,
		Setting:   SettingHome,
		Sentences: []string{"{name} took a warm bath and put on pajamas.", "Good night, {name}!"},
		Words:     []string{"took", "a", "warm", "bath", "and", "put", "on", "pajamas", "good", "night"},
	},
	{
		ID:        "bedtime-stars",
		Phase:     PhaseBedtime,
		Setting:   SettingHome,
		Sentences: []string{"{name} looked out at the stars.", "It was a happy day, and now it was time to sleep."},
		Words:     []string{"looked", "out", "at", "the", "stars", "it", "was", "a", "happy", "day", "and", "now", "time", "to", "sleep"},
	},
}
