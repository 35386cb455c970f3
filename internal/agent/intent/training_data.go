package intent

import "github.com/InsaneJSK/Inflx-AI/internal/agent/model"

type trainingExample struct {
	text  string
	label model.Intent
}

// trainingData is the fitted artifact's corpus. It ships with the binary;
// there is no training pipeline in this service.
var trainingData = []trainingExample{
	// greeting
	{"hi", model.IntentGreeting},
	{"hello", model.IntentGreeting},
	{"hey", model.IntentGreeting},
	{"hey there", model.IntentGreeting},
	{"good morning", model.IntentGreeting},
	{"good evening", model.IntentGreeting},
	{"good afternoon", model.IntentGreeting},
	{"hi there", model.IntentGreeting},
	{"hola", model.IntentGreeting},
	{"hola amigo", model.IntentGreeting},
	{"namaste", model.IntentGreeting},
	{"yo", model.IntentGreeting},
	{"whats up", model.IntentGreeting},
	{"hows it going", model.IntentGreeting},
	{"hey how are you", model.IntentGreeting},

	// product / pricing inquiry
	{"what are your plans", model.IntentProductInquiry},
	{"how much does it cost", model.IntentProductInquiry},
	{"tell me about pricing", model.IntentProductInquiry},
	{"what does your product do", model.IntentProductInquiry},
	{"what features do you have", model.IntentProductInquiry},
	{"difference between basic and pro", model.IntentProductInquiry},
	{"what is included in the pro plan", model.IntentProductInquiry},
	{"what are the benefits of your tool", model.IntentProductInquiry},
	{"how is this different from other tools", model.IntentProductInquiry},
	{"do you have a free trial", model.IntentProductInquiry},
	{"can you explain your pricing structure", model.IntentProductInquiry},
	{"what resolutions do you support", model.IntentProductInquiry},
	{"does it generate captions", model.IntentProductInquiry},
	{"is support available on all plans", model.IntentProductInquiry},
	// soft interest and hedged language stays inquiry
	{"i think this might be useful", model.IntentProductInquiry},
	{"this looks interesting", model.IntentProductInquiry},
	{"i am considering using this", model.IntentProductInquiry},
	{"it might be good for my linkedin", model.IntentProductInquiry},
	{"maybe i will use this for youtube", model.IntentProductInquiry},
	{"i am exploring options right now", model.IntentProductInquiry},
	{"hello i would like to know more about your product", model.IntentProductInquiry},
	{"good morning what is your pricing", model.IntentProductInquiry},

	// high intent lead
	{"i want to buy", model.IntentHighIntentLead},
	{"i want to sign up", model.IntentHighIntentLead},
	{"im ready to purchase", model.IntentHighIntentLead},
	{"i want the pro plan", model.IntentHighIntentLead},
	{"i want to try for my youtube channel", model.IntentHighIntentLead},
	{"how do i get started right now", model.IntentHighIntentLead},
	{"im ready to get started", model.IntentHighIntentLead},
	{"sign me up", model.IntentHighIntentLead},
	{"i want to subscribe", model.IntentHighIntentLead},
	{"help me register", model.IntentHighIntentLead},
	{"i want to create an account", model.IntentHighIntentLead},
	{"i want to upgrade to pro", model.IntentHighIntentLead},
	{"i want to purchase a plan", model.IntentHighIntentLead},
	{"i want to use this for my instagram channel", model.IntentHighIntentLead},
	{"hello i would like to sign up for the pro plan", model.IntentHighIntentLead},
	{"good evening how can i get started", model.IntentHighIntentLead},
	{"i want the pro plan for my youtube", model.IntentHighIntentLead},
	{"i want to join now", model.IntentHighIntentLead},
	{"i want to start today", model.IntentHighIntentLead},
	{"i have decided to go with your product", model.IntentHighIntentLead},
}
