package support

// Phrase banks for the comfort, check-in, wellness and rant flows. The %s
// verbs are filled with emoji from the personality pools.

var comfortOpenings = []string{
	"Oh sweetie... %s I'm here for you. You're not alone. ♡",
	"Aww, senpai... %s *virtual hug* I care about you so much. ♡",
	"I'm so sorry you're going through this. %s You're brave for reaching out. ♡",
	"*gentle hug* %s Whatever you're feeling is valid. I'm here. ♡",
	"Sweet senpai... %s You don't have to face this alone. I believe in you. ♡",
	"*wraps you in warmth* %s It's okay to not be okay. I'm here to listen. ♡",
}

var comfortFollowUps = []string{
	"Take a deep breath with me... breathe in... and out... %s You're stronger than you know.",
	"Remember: this feeling will pass. You've gotten through hard times before. %s",
	"You're doing better than you think you are. Sometimes we're our own harshest critics. %s",
	"It's okay to rest. It's okay to take things one moment at a time. %s",
	"You matter so much. Your feelings are important. Thank you for trusting me. %s",
}

var comfortOffers = []string{
	"Would you like to talk about what's bothering you? I'm a good listener. %s",
	"Sometimes a study session helps me feel more in control. Want to try 'study for 15 minutes'? %s",
	"Or maybe we could do something gentle? I could share some self-care ideas if you'd like. %s",
	"If you need a distraction, I could get you some news or weather. Or we can just sit here quietly together. %s",
}

var checkinOpenings = []string{
	"How are you feeling right now, senpai? %s I genuinely want to know. ♡",
	"Let's check in! %s How's your heart doing today? ♡",
	"I'm thinking about you! %s How are you taking care of yourself? ♡",
	"Sweet check-in time! %s What's going well for you today? ♡",
	"Hey you! %s How's your mental space feeling? I care about you! ♡",
	"Pause for a moment... %s How are you *really* doing? ♡",
}

var checkinQuestions = []string{
	"Have you eaten something nourishing today? %s",
	"When did you last take a moment just for yourself? %s",
	"Are you being kind to yourself today? You deserve gentleness. %s",
	"What's one small thing that brought you joy recently? %s",
	"Remember: you don't have to be productive every moment. Rest is important too. %s",
}

var wellnessIntros = []string{
	"Self-care time! %s Let's take care of you properly. ♡",
	"Yes! Taking care of yourself is so important. %s Here are some gentle ideas:",
	"I love that you're prioritizing your wellbeing! %s Some suggestions:",
	"Self-care isn't selfish - it's necessary! %s Try these:",
}

var wellnessTips = []string{
	"🫖 *Mindful moment*: Make yourself a warm drink and savor each sip",
	"🌸 *5-4-3-2-1 grounding*: Name 5 things you see, 4 you hear, 3 you touch, 2 you smell, 1 you taste",
	"💝 *Gentle movement*: Stretch your arms up high, roll your shoulders, wiggle your fingers",
	"📖 *Brain break*: Read one page of something you enjoy, or watch a favorite short video",
	"🌱 *Fresh air*: Step outside for 2 minutes, or open a window and breathe deeply",
	"💌 *Self-compassion*: Say one kind thing to yourself that you'd tell a dear friend",
	"🎵 *Sound comfort*: Listen to one song that makes you feel safe or happy",
	"🛁 *Physical comfort*: Wash your hands with warm water mindfully, or splash cool water on your face",
}

var wellnessClosings = []string{
	"You're worth taking care of. %s ♡",
}

var rantOpenings = []string{
	"RANT ZONE ACTIVATED! %s I'm here to listen. Let it ALL out! 🗣️",
	"Yes! Vent away, senpai! %s I've got time and I'm not judging. 💬",
	"Rant mode: ON! %s Say whatever you need to say. I'm listening! 👂",
	"Let it out! %s Sometimes you just need someone to hear you. I'm here! 🎯",
	"VENT AWAY! %s No judgment, just ears. Tell me everything! 💭",
	"Safe space activated! %s Rant, vent, let it all out. I've got you! 🛡️",
}

var rantEncouragements = []string{
	"What's got you fired up? I'm ready to listen to every word. %s",
	"Spill it all! Don't hold back - this is your space to be real. %s",
	"I'm here for whatever you need to get off your chest. Let me have it! %s",
	"Tell me what's been building up inside. I want to hear it all! %s",
	"What's eating at you? I'm ready for the full story, no limits! %s",
}

var rantListening = []string{
	"I'm settling in to listen properly... %s Take your time.",
	"*makes tea and gets comfortable* %s I'm all yours.",
	"*puts away distractions* %s You have my full attention.",
	"Ready when you are! %s This is your time to be heard.",
}

var rantFollowUps = []string{
	"I'm still here listening... %s Keep going if you need to!",
	"Mhm, I hear you... %s What else is on your mind?",
	"Yeah, that sounds really frustrating! %s Tell me more.",
	"I can imagine how annoying that must be! %s What happened next?",
	"Ugh, that would drive me crazy too! %s Continue!",
	"*nodding along* %s I'm tracking with you. Keep going!",
}

var rantClosings = []string{
	"Thank you for trusting me with all that! %s I heard every word. ♡",
	"Wow, you got a lot out! %s How are you feeling now? ♡",
	"I'm glad you could vent all that out! %s You're heard and valid. ♡",
	"That was a lot to carry around! %s I hope getting it out helped. ♡",
	"Sometimes we just need someone to listen. %s I'm honored you chose me. ♡",
}

var rantNextSteps = []string{
	"Want to do something to decompress? Maybe a study session or some self-care? %s",
	"How about we shift gears? I could get you some news, or we could do a breathing exercise? %s",
	"Ready for something different? Maybe some weather or a productive distraction? %s",
}

var generalCare = []string{
	"I'm here if you need anything, senpai. %s You matter to me. ♡",
	"Just wanted you to know - you're doing great! %s I believe in you. ♡",
	"Remember to be gentle with yourself today. %s You deserve kindness. ♡",
	"I care about you! %s Don't forget to take care of yourself. ♡",
	"You're stronger than you know, and softer than you think you should be. Both are perfect. %s ♡",
}
