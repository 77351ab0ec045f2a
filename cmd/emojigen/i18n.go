// Package main provides localization for the emojigen CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Render text as emoji-sized still images and animations.": "テキストを絵文字サイズの静止画・アニメーション画像として描画します。",

		// Render command
		"Render a text emoji as a WebP still or APNG animation.": "テキスト絵文字をWebP静止画またはAPNGアニメーションとして描画",
		"Text to render. Newlines (\\n) are supported.":          "描画するテキスト。改行（\\n）に対応",
		"Output file path (extension chosen by format when omitted).": "出力ファイルパス（省略時は形式に応じた拡張子を付与）",

		// Style flags
		"Font identifier (default: configured default font).": "フォントID（デフォルト: 設定のデフォルトフォント）",
		"Text color (hex, e.g., #FF0000).":                    "文字色（16進数、例: #FF0000）",
		"Outline color (hex).":                                "縁取り色（16進数）",
		"Outline width in pixels (0-20).":                     "縁取り幅（ピクセル、0-20）",
		"Draw a blurred drop shadow.":                         "ぼかし影を描画",

		// Layout flags
		"Canvas mode (square or banner).": "キャンバスモード（square または banner）",
		"Horizontal text alignment.":      "テキストの水平揃え",

		// Motion flags
		"Motion type.":                       "モーションの種類",
		"Motion intensity.":                  "モーションの強度",
		"Motion speed multiplier (0.1-5.0).": "モーション速度の倍率（0.1-5.0）",

		// Configuration flags
		"Path to YAML configuration file.":           "YAML設定ファイルのパス",
		"Font directory (overrides configuration).":  "フォントディレクトリ（設定を上書き）",
		"Maximum output size in KB (overrides configuration).": "最大出力サイズ（KB、設定を上書き）",

		// Debug flags
		"Enable debug output.":        "デバッグ出力を有効化",
		"Directory for debug output.": "デバッグ出力先ディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":              "すべてのログ出力を抑制",

		// Fonts command
		"List available fonts.": "利用可能なフォントを一覧表示",

		// Version command
		"Show version information.": "バージョン情報を表示",
		"emojigen version %s":       "emojigen バージョン %s",

		// Validation errors
		"text must be 1-%d characters":            "テキストは1〜%d文字で指定してください",
		"outline width must be between 0 and 20":  "縁取り幅は0〜20の範囲で指定してください",
		"speed must be between 0.1 and 5.0":       "速度は0.1〜5.0の範囲で指定してください",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。終了します...",
	})
}
