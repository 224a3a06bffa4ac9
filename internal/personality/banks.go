package personality

// Emoji pools and phrase banks, kept as data so they can be tuned without
// touching logic. Phrase banks are fmt templates; the verbs are filled by the
// Responder methods.

var moodEmojis = []string{
	"(´｡• ᵕ •｡`)", "(◕‿◕)", "( ´ ω ` )", "ヽ(°〇°)ﾉ",
	"(◡ ‿ ◡)", "(*´꒳`*)", "( ◞･̀∩･́)◞", "♡(˃͈ દ ˂͈ ༶ )",
}

var excitementEmojis = []string{
	"✧(◕‿-)✧", "٩(◕‿◕)۶", "(ﾉ◕ヮ◕)ﾉ*:･ﾟ✧",
	"ヽ(♡‿♡)ノ", "┌(★ｏ☆)┘", "＼(^o^)／",
}

var supportiveEmojis = []string{
	"(つ✧ω✧)つ", "(づ｡◕‿‿◕｡)づ", "＼(^▽^)／",
	"ヾ(＾-＾)ノ", "(｡•̀ᴗ-)✧",
}

var errorEmojis = []string{
	"(◞‸◟)", "(｡•́︿•̀｡)", "(´-ω-`)", "( ˘︹˘ )",
	"(｡╯︵╰｡)", "(´∩｡• ᵕ •｡∩`)", "(◞ ‸ ◟ )", "( ◡̦ ‿ ◡̦ )",
}

var coldWeatherEmojis = []string{
	"(｡>﹏<｡)", "(◞ ‸ ◟ )", "( ˘︹˘ )", "(´°̥̥̥̥̥̥̥̥ω°̥̥̥̥̥̥̥̥｀)",
	"ヽ(°〇°)ﾉ", "(⌒_⌒;)",
}

var warmWeatherEmojis = []string{
	"(◕‿◕)♡", "ヽ(°〇°)ﾉ", "＼(^▽^)／", "(｡◕‿◕｡)",
	"ヾ(＾∇＾)", "( ◡ ‿ ◡ )", "(◔‿◔)", "✧(◕‿-)✧",
}

var greetings = []string{
	"Hiya senpai! %s Ready to be productive together?",
	"Ohayo! %s What are we working on today?",
	"Senpai! %s I've been waiting for you!",
	"Konnichiwa! %s Let's make today amazing!",
	"Heya! %s Ready to tackle some work together?",
	"Yay! %s My favorite study buddy is back!",
}

var casualResponses = []string{
	"Mhm mhm! %s I'm listening~",
	"Oh really? %s Tell me more!",
	"Senpai~ %s You're so interesting!",
	"Aww! %s That's nice!",
	"I see, I see! %s Anything else on your mind?",
	"Hai hai! %s I'm here if you need anything!",
	"Hmm~ %s What should we do next?",
}

var encouragements = []string{
	"You've got this! %s",
	"I believe in you! %s",
	"Ganbatte senpai! %s",
	"Focus mode activated! %s",
	"Let's do this together! %s",
	"You're amazing! %s",
}

var surpriseEncouragements = []string{
	"Just wanted to say - you're doing great! %s ♡",
	"Random reminder: you're awesome! %s ♡",
	"Hey! You're pretty amazing, you know that? %s ♡",
	"Psst... you're wonderful! %s ♡",
	"Quick reminder that you matter! %s ♡",
}

var durationErrors = []string{
	"Eh? %s That's a bit much! Try 1-240 minutes please~",
	"Ano... %s Let's keep it between 1-240 minutes, ok?",
	"Senpai~ %s That's too long! Pick something between 1-240 minutes!",
}

var alreadyActiveErrors = []string{
	"Eh? %s You already have a timer running! Say 'stop' to cancel it first~",
	"Matte! %s There's already a timer going! Want to stop it first?",
	"Senpai~ %s You've got a timer active! Try 'done' to finish it!",
}

var generalErrors = []string{
	"Eh? %s Something went wrong! Try again?",
	"Ano... %s I didn't understand that! Can you try differently?",
	"Gomen! %s I'm confused! What did you want to do?",
}

var studyStarted = []string{
	"Yay! %s %d minutes of study time! Let's goooo!",
	"Okie dokie! %s %d minutes of focus time starting now!",
	"Alright senpai! %s %d minutes of productive time!",
	"Yosh! %s %d minutes of learning time! You got this!",
}

var breakStarted = []string{
	"Break time! %s %d minutes to recharge~",
	"Ooh rest time! %s %d minutes of chill vibes!",
	"You deserve this! %s %d minutes of relaxation!",
	"Time to chill! %s %d minutes of comfy time~",
}

var studyCompleted = []string{
	"Yay! %s %d minutes of study complete! Senpai is amazing!",
	"Woohoo! %s %d minutes of focus done! You're incredible!",
	"Sugoi! %s %d minutes of study power! You did so well!",
	"Yatta! %s %d minutes of focus time finished!",
}

var breakCompleted = []string{
	"Break time over! %s %d minutes of rest complete!",
	"Refreshed? %s %d minutes of chill time done!",
	"Ready to go? %s %d minutes of rest finished!",
}

var timerStatus = []string{
	"You've got %s left! %s Keep going senpai!",
	"%s remaining! %s You're doing great!",
	"Just %s more! %s You're crushing it!",
}

var timerStopped = []string{
	"Stopped! %s Good work on that %s session!",
	"All done! %s Every bit of effort counts, even a short %s!",
	"No worries! %s That %s still counted - you showed up!",
	"Session ended! %s You did great on that %s while it lasted!",
}

var noTimer = []string{
	"No timers running! %s Want to start one?",
	"All clear! %s Ready to begin a study session?",
	"Nothing active right now! %s Let's get productive!",
}

var breakAfterStudy = []string{
	"Time for a break? %s Maybe 'let's take a 5 minute break'?",
	"How about some rest? %s Try 'break for 10 minutes'~",
	"Break time maybe? %s You deserve it!",
}

var studyAfterBreak = []string{
	"Feeling refreshed? %s Ready for another study session?",
	"Break's over! %s Time to dive back in!",
	"Ready to focus again? %s Let's gooo!",
}
