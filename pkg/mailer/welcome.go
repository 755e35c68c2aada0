package mailer

import "fmt"

// NewWelcomeJob renders the one-time welcome email sent after a user's first
// Google login.
func NewWelcomeJob(to, name string) EmailJob {
	if name == "" {
		name = "there"
	}
	return EmailJob{
		To:      to,
		Subject: "Welcome to NutriTrack",
		Text: fmt.Sprintf("Hi %s,\n\n"+
			"Welcome to NutriTrack! Finish setting up your profile to get dining-hall "+
			"menus and daily nutrition tracking tailored to your goals.\n\n"+
			"— The NutriTrack team", name),
		HTML: fmt.Sprintf("<p>Hi %s,</p>"+
			"<p>Welcome to <strong>NutriTrack</strong>! Finish setting up your profile to get "+
			"dining-hall menus and daily nutrition tracking tailored to your goals.</p>"+
			"<p>— The NutriTrack team</p>", name),
	}
}
