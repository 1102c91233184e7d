package advisory

import "fmt"

const foodRiskPromptTemplate = `You are a helpful gut health assistant for users in Africa managing ulcers.
Analyze the following food item: %q.
Provide a very short, 2-sentence assessment.
1. Is it generally high, medium, or low risk for ulcer patients?
2. Suggest a safer alternative if high risk.
Keep it culturally relevant to West African cuisine if applicable.`

// FoodRiskPrompt interpolates a food description into the fixed instruction.
func FoodRiskPrompt(food string) string {
	return fmt.Sprintf(foodRiskPromptTemplate, food)
}
