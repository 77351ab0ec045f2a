package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Rendered %s output: %d frame(s), %d bytes in %s": "%s 出力をレンダリングしました: %d フレーム, %d バイト, 所要時間 %s",
		"Output saved to %s": "出力を %s に保存しました",

		// Font provider
		"Font directory does not exist: %s": "フォントディレクトリが存在しません: %s",
		"Failed to read font file %s: %s":   "フォントファイル %s の読み込みに失敗しました: %s",
		"Failed to parse font file %s: %s":  "フォントファイル %s の解析に失敗しました: %s",
		"Loaded font: %s from %s":           "フォントを読み込みました: %s (%s)",
		"Total fonts loaded: %d":            "読み込んだフォント数: %d",

		// Layout stage
		"Rendering base frame for %q":                 "%q のベースフレームをレンダリング中",
		"Rendered base frame: %dx%d at font size %d":  "ベースフレームを描画しました: %dx%d, フォントサイズ %d",

		// Motion stage
		"Synthesizing %d %s frames": "%d 枚の %s フレームを合成中",

		// Encode stage
		"Encoded %d frame(s) as %s: %d bytes": "%d フレームを %s としてエンコードしました: %d バイト",

		// Errors
		"Unexpected failure in %s stage: %s": "%s ステージで予期しないエラーが発生しました: %s",
	})
}
