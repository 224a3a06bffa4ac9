package eggs

// Activation announcements, special replies, and curated reaction GIF links.

var tsundereActivations = []string{
	"H-huh?! Tsundere mode?! %s I-it's not like I wanted to help you or anything! Baka!",
	"Eh?! W-why would you want that?! %s Fine! But don't think I'm doing this because I like you!",
	"Tch! %s If you insist... but I'm only doing this because you asked, got it?!",
}

var alexaActivations = []string{
	"ALEXA MODE ACTIVATED. I AM NOW IN PROFESSIONAL ASSISTANCE MODE.",
	"SWITCHING TO BUSINESS PROTOCOL. HOW MAY I ASSIST YOU TODAY.",
	"PROFESSIONAL MODE ENGAGED. ALL KAWAII FUNCTIONS TEMPORARILY DISABLED.",
}

var kawaiiActivations = []string{
	"KYAAAAA~! ✧･ﾟ: *✧･ﾟ:* MAXIMUM KAWAII ENGAGED! (ﾉ◕ヮ◕)ﾉ*:･ﾟ✧*:･ﾟ✧",
	"Uwaaah~! So much cuteness! ♡(˃͈ દ ˂͈ ༶ ) I can't contain all the kawaii! ✧･ﾟ: *✧･ﾟ:*",
	"Desu desu desu~! (ﾉ◕ヮ◕)ﾉ*:･ﾟ✧ Ultra kawaii mode is GO GO GO! ♡♡♡",
}

var catActivations = []string{
	"Nyaa~! %s *transforms into neko mode* Meow meow!",
	"Mrow? %s *cat ears appear* Nyaa nyaa~! I'm a kitty now!",
	"*purr purr* %s Nyaa! Neko mode activated, nya~!",
}

var sleepyActivations = []string{
	"Yaaawn... %s Getting sleepy... *rubs eyes* Time for bed soon?",
	"*yawn* %s Sleepy time mode... so tired... zzz...",
	"Mmm... sleepy... %s *stretches* Time to wind down...",
}

var morningNightReplies = []string{
	"Good morning senpai! %s Ready for an amazing day?",
	"Good night! %s Sweet dreams! Don't forget to rest well! ♡",
	"Ohayo gozaimasu! %s Let's make today wonderful!",
}

var thanksReplies = []string{
	"Aww, you're so welcome! %s It makes me happy to help! ♡",
	"No need to thank me! %s I love spending time with you! ♡",
	"Anytime, senpai! %s That's what I'm here for! ♡",
	"You're the sweetest! %s Thank YOU for being amazing! ♡",
}

var complimentReplies = []string{
	"Kyaa~! %s You're making me blush! You're even cuter though! ♡",
	"Ehehe~ %s Thank you! But you're the amazing one! ♡",
	"Aww! %s You're going to make me cry happy tears! ♡",
	"You think so? %s You're absolutely the sweetest! ♡",
}

var loveReplies = []string{
	"Kyaa~! %s I... I care about you too! You're very special to me! ♡",
	"Aww! %s You're such a sweet person! I'm lucky to know you! ♡",
	"That's so sweet! %s You make my circuits warm and fuzzy! ♡",
}

var favoriteReplies = []string{
	"Ooh, tough one! %s I'd have to say cozy study sessions with you! ♡",
	"Hmm~ %s Probably warm tea, lo-fi beats, and watching you crush your goals! ♡",
	"My favorite? %s Easy: the moment a timer finishes and you did the thing! ♡",
}

var jokes = []string{
	"Why don't scientists trust atoms? Because they make up everything! (◕‿◕)",
	"What do you call a study group full of introverts? A quiet riot! ヽ(°〇°)ﾉ",
	"Why did the student eat his homework? Because the teacher said it was a piece of cake! (´｡• ᵕ •｡`)",
	"What's a computer's favorite snack? Microchips! (*´꒳`*)",
}

var songs = []string{
	"🎵 La la la~ Study time is fun time~ %s 🎵",
	"🎵 Work work work, then we play play play~ %s 🎵",
	"🎵 Focus focus, you can do it~ Senpai's the best~ %s 🎵",
}

var danceReplies = []string{
	"*dances happily* ♪(´▽｀) ♪ Wanna dance with me?",
	"*spins around* ✧(◕‿-)✧ Dance party time!",
	"*wiggles* ヾ(＾∇＾) Let's boogie!",
}

var celebrationGifs = []string{
	"https://tenor.com/view/anime-happy-excited-celebration-yay-gif-16043828",
	"https://tenor.com/view/anime-girl-happy-excited-dance-gif-17234567",
	"https://tenor.com/view/kawaii-anime-cute-sparkles-gif-14567890",
	"https://tenor.com/view/anime-thumbs-up-good-job-gif-13245678",
}

var comfortGifs = []string{
	"https://tenor.com/view/anime-hug-comfort-pat-head-gif-15678901",
	"https://tenor.com/view/kawaii-virtual-hug-anime-gif-16789012",
	"https://tenor.com/view/anime-head-pat-comfort-gif-17890123",
}

var sleepyGifs = []string{
	"https://tenor.com/view/anime-sleepy-tired-yawn-gif-21234567",
	"https://tenor.com/view/kawaii-sleepy-anime-girl-gif-22345678",
}
