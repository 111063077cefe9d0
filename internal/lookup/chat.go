package lookup

import "strings"

// chatTopic is one entry of the ordered reply table. A topic matches when
// the lowercased message contains any of its keywords.
type chatTopic struct {
	name     string
	keywords []string
	reply    string
}

func (t chatTopic) matches(lower string) bool {
	for _, k := range t.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// chatTopics is evaluated in order; the first match wins.
var chatTopics = []chatTopic{
	{
		name:     "headache",
		keywords: []string{"headache", "head pain"},
		reply:    "Headaches can have various causes including tension, stress, dehydration, or lack of sleep. For tension headaches, try resting in a quiet, dark room, applying a cold or warm compress, staying hydrated, and managing stress. If headaches are severe, frequent, or accompanied by other symptoms like fever, vision changes, or neck stiffness, please consult a healthcare provider immediately.",
	},
	{
		name:     "fever",
		keywords: []string{"fever", "temperature"},
		reply:    "A fever is your body's natural response to infection. For adults, a fever is generally considered 100.4°F (38°C) or higher. Stay hydrated, rest, and you can use over-the-counter fever reducers if comfortable. Seek immediate medical attention if fever exceeds 103°F (39.4°C), lasts more than 3 days, or is accompanied by severe symptoms like difficulty breathing, chest pain, or persistent vomiting.",
	},
	{
		name:     "cough",
		keywords: []string{"cough", "coughing"},
		reply:    "Coughs can be caused by viral infections, allergies, or irritants. Stay hydrated, use a humidifier, and honey can help soothe throat irritation (not for children under 1 year). See a doctor if your cough lasts more than 3 weeks, produces blood, or is accompanied by high fever, difficulty breathing, or chest pain.",
	},
	{
		name:     "chest pain",
		keywords: []string{"chest pain", "heart"},
		reply:    "Chest pain can range from minor issues to serious medical emergencies. If you're experiencing severe chest pain, especially with shortness of breath, nausea, sweating, or pain radiating to arms, neck, or jaw, seek emergency medical care immediately. For mild chest discomfort, it could be related to muscle strain, acid reflux, or anxiety, but it's always best to have chest pain evaluated by a healthcare professional.",
	},
	{
		name:     "stress",
		keywords: []string{"stress", "anxiety"},
		reply:    "Stress and anxiety are common but manageable. Try deep breathing exercises, regular physical activity, adequate sleep, and mindfulness practices. Limit caffeine and alcohol, and consider talking to friends, family, or a counselor. If anxiety significantly impacts your daily life or you have thoughts of self-harm, please reach out to a mental health professional or crisis hotline immediately.",
	},
	{
		name:     "sleep",
		keywords: []string{"sleep", "insomnia"},
		reply:    "Good sleep hygiene is crucial for health. Maintain a consistent sleep schedule, create a comfortable sleep environment, avoid screens before bedtime, and limit caffeine late in the day. Regular exercise can help, but not close to bedtime. If sleep problems persist for more than a few weeks or significantly impact your daily functioning, consider consulting a healthcare provider.",
	},
	{
		name:     "diet",
		keywords: []string{"diet", "nutrition"},
		reply:    "A balanced diet includes a variety of fruits, vegetables, whole grains, lean proteins, and healthy fats. Stay hydrated, limit processed foods, sugar, and excessive sodium. Portion control is important. If you have specific dietary concerns, medical conditions, or need to lose/gain weight, consider consulting with a registered dietitian or your healthcare provider for personalized advice.",
	},
	{
		name:     "exercise",
		keywords: []string{"exercise", "fitness"},
		reply:    "Regular physical activity is excellent for overall health. Adults should aim for at least 150 minutes of moderate-intensity aerobic activity per week, plus muscle-strengthening activities. Start slowly if you're new to exercise, stay hydrated, and listen to your body. If you have chronic health conditions or haven't exercised in a while, consult your doctor before starting a new exercise program.",
	},
	{
		name:     "medication",
		keywords: []string{"medication", "medicine"},
		reply:    "Always take medications as prescribed by your healthcare provider. Don't share medications with others, and don't stop taking prescribed medications without consulting your doctor first. Store medications properly, check expiration dates, and be aware of potential side effects. If you experience unusual symptoms after taking medication, contact your healthcare provider or pharmacist.",
	},
}

// ChatFallbackReply is returned when no topic matches.
const ChatFallbackReply = "Thank you for your question. While I can provide general health information, I recommend consulting with a qualified healthcare provider for personalized medical advice, especially for specific symptoms or conditions. They can properly evaluate your situation and provide appropriate treatment recommendations. Is there any other general health information I can help you with?"

const chatGreeting = "Hello! I'm your HealthAI assistant. I'm here to help answer your health-related questions and provide general medical information. How can I assist you today?"

// Greeting returns the assistant turn that opens every transcript.
func Greeting() string {
	return chatGreeting
}

// GenerateChatReply returns the canned reply for the first topic whose
// keywords appear in text, or ChatFallbackReply.
func GenerateChatReply(text string) string {
	reply, _, _ := GenerateChatReplyMatch(text)
	return reply
}

// GenerateChatReplyMatch is GenerateChatReply that also reports the matched
// topic name.
func GenerateChatReplyMatch(text string) (string, string, bool) {
	lower := strings.ToLower(text)
	for _, t := range chatTopics {
		if t.matches(lower) {
			return t.reply, t.name, true
		}
	}
	return ChatFallbackReply, "", false
}

// ChatTopics returns the topic names in priority order.
func ChatTopics() []string {
	names := make([]string, len(chatTopics))
	for i, t := range chatTopics {
		names[i] = t.name
	}
	return names
}
