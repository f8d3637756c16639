package paving

import "go.uber.org/zap"

func zapHeightFields(from, to int) []zap.Field {
	return []zap.Field{zap.Int("from_height", from), zap.Int("to_height", to)}
}
