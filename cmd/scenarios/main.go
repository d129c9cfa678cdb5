// Offline scenario runner: feeds representative kiosk flows through the
// decision engine in mock (fallback-only) mode and prints the results.
// Handy for eyeballing behavior without a model key or a running server.
package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/graduation-team-project-4nd/KiMate-AI/internal/agent"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/dto"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/entity"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/pkg/logger"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/screen"
)

type scenario struct {
	name     string
	input    string
	ocrTexts []string
}

func main() {
	log := logger.NewNopLogger()
	recommender := agent.NewRecommender(nil, log, true)
	detector := screen.NewDetector(recommender, 0.6)
	ctx := context.Background()

	scenarios := []scenario{
		{
			name:     "unique match",
			input:    "불고기 버거 하나",
			ocrTexts: []string{"추천메뉴", "불고기버거", "4500원", "치즈버거", "다음"},
		},
		{
			name:     "ambiguous",
			input:    "버거",
			ocrTexts: []string{"불고기버거", "치즈버거"},
		},
		{
			name:     "not on screen",
			input:    "피자",
			ocrTexts: []string{"불고기버거", "치즈버거"},
		},
		{
			name:     "dine in or takeout",
			input:    "매장에서 먹고 갈게요",
			ocrTexts: []string{"식사 장소를 선택해주세요", "매장", "포장"},
		},
	}

	for _, s := range scenarios {
		result := recommender.Recommend(ctx, entity.DecisionContext{
			UserInput:  s.input,
			Candidates: s.ocrTexts,
		})
		printJSON("analyze/"+s.name, dto.FromActionResult(result))
	}

	// Screen transition: category screen -> burger menu
	previous := []string{"버거", "사이드", "디저트"}
	current := []string{"불고기버거", "치즈버거", "새우버거", "이전", "다음"}
	detect := detector.Detect(ctx, previous, current, entity.DecisionContext{UserInput: "불고기버거 줘"})
	printJSON("screen-detect/changed", dto.FromScreenDetectResult(detect))

	detect = detector.Detect(ctx, current, current, entity.DecisionContext{})
	printJSON("screen-detect/unchanged", dto.FromScreenDetectResult(detect))
}

func printJSON(prefix string, v interface{}) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Printf("\n[%s]\n%s\n", prefix, out)
}
