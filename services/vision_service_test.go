package services

import "testing"

func TestParseFoodEstimate(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  FoodEstimate
	}{
		{
			name:  "clean json",
			reply: `{"food_name": "Margherita Pizza", "calories": 850, "confidence": "high", "description": "A whole margherita pizza."}`,
			want:  FoodEstimate{FoodName: "Margherita Pizza", Calories: 850, Confidence: "high", Description: "A whole margherita pizza."},
		},
		{
			name:  "fenced json",
			reply: "```json\n{\"food_name\": \"Apple\", \"calories\": 95, \"confidence\": \"medium\", \"description\": \"One medium apple.\"}\n```",
			want:  FoodEstimate{FoodName: "Apple", Calories: 95, Confidence: "medium", Description: "One medium apple."},
		},
		{
			name:  "missing confidence defaults to low",
			reply: `{"food_name": "Toast", "calories": 120}`,
			want:  FoodEstimate{FoodName: "Toast", Calories: 120, Confidence: "low"},
		},
		{
			name:  "prose instead of json",
			reply: "I think that's a sandwich, maybe around 400 calories.",
			want:  UnknownFoodEstimate,
		},
		{
			name:  "empty reply",
			reply: "",
			want:  UnknownFoodEstimate,
		},
		{
			name:  "negative calories",
			reply: `{"food_name": "Glitch", "calories": -50, "confidence": "high"}`,
			want:  UnknownFoodEstimate,
		},
		{
			name:  "blank food name",
			reply: `{"food_name": "  ", "calories": 200}`,
			want:  UnknownFoodEstimate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFoodEstimate(tt.reply)
			if got != tt.want {
				t.Errorf("ParseFoodEstimate() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
