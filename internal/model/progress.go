// internal/model/progress.go
package model

const (
	ProgressMin = 0
	ProgressMax = 100
)

// QuizProgress はクイズの進捗率 (%) を返します。
// 完了済みは常に100、対象カードが0件なら0。
func QuizProgress(currentIndex int, cardCount int64, isCompleted bool) int {
	if isCompleted {
		return ProgressMax
	}
	if cardCount <= 0 || currentIndex <= 0 {
		return ProgressMin
	}
	return clampProgress(int(int64(currentIndex) * ProgressMax / cardCount))
}

// CourseProgress はカテゴリごとの最高進捗の平均をコースの進捗率として返します。
// クイズのないカテゴリは0として数えます。
func CourseProgress(categories []string, quizzes []QuizView) int {
	if len(categories) == 0 {
		return ProgressMin
	}

	best := make(map[string]int, len(categories))
	for _, q := range quizzes {
		if q.Progress > best[q.Category] {
			best[q.Category] = q.Progress
		}
	}

	total := 0
	for _, category := range categories {
		total += clampProgress(best[category])
	}
	return clampProgress(total / len(categories))
}

func clampProgress(p int) int {
	if p < ProgressMin {
		return ProgressMin
	}
	if p > ProgressMax {
		return ProgressMax
	}
	return p
}
