package generator

// postSystemPrompt frames the model as a social media manager writing in
// the target language.
const postSystemPrompt = `You are a professional social media manager who creates content in %s.`

// postPrompt asks for one platform post. Arguments: platform display
// name, language name, title, content, language name, max length,
// hashtag limit, language name, language name, platform display name,
// language name, language name.
const postPrompt = `Create a %s post in %s for the following content:
Title: %s
Content: %s

Requirements:
- Write the post in %s
- Maximum length: %d characters
- Maximum %d relevant hashtags in %s
- Include a call to action in %s
- Make it engaging for %s's %s-speaking audience
- Keep hashtags in English for better reach, but the post in %s`

// keywordSystemPrompt frames the model for keyword extraction.
const keywordSystemPrompt = `You are a keyword extraction specialist.`

// keywordPrompt asks for a comma-separated keyword list.
const keywordPrompt = `Extract 5-7 relevant keywords from this content:
%s

Return only the keywords as a comma-separated list.`
