package router

// Reply literals and the derived-prompt shape. These are fixed at build
// time; changing them means redeploying the rule table.
const (
	emptyInputReply = "⚠️ Please enter a question."

	appointmentReply = "📅 For appointment scheduling or physician referrals, please contact your healthcare provider directly."

	medicationReply = "💊 For medication or prescription concerns, please consult your doctor or pharmacist."

	failureReply = "⚠️ Sorry, I couldn't get an answer right now. Please try again in a moment."

	disclaimer = "⚠️ Disclaimer: This information is educational only and not a substitute for professional medical advice. " +
		"Please consult a qualified healthcare professional for personalized guidance."

	symptomPromptFormat = "What are possible causes and general information about %s?"
)
