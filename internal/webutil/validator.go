package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"go_keiko_flashcards/internal/model"

	"github.com/go-playground/locales/ja" // 日本語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	ja_translations "github.com/go-playground/validator/v10/translations/ja" // 日本語翻訳
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"id":            "ID",
	"name":          "コース名",
	"course_code":   "コースコード",
	"description":   "説明",
	"question":      "問題",
	"answer":        "解答",
	"category":      "カテゴリ",
	"difficulty":    "難易度",
	"tags":          "タグ",
	"current_index": "現在位置",
	"correct_count": "正解数",
	"is_completed":  "完了フラグ",
	"hint_used":     "ヒント使用フラグ",
	"old":           "変更前のカテゴリ",
	"new":           "変更後のカテゴリ",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	japanese := ja.New()
	uni := ut.New(japanese, japanese)
	var found bool
	Trans, found = uni.GetTranslator("ja")
	if !found {
		log.Fatal("translator not found")
	}

	if err := ja_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}

	// フィールド名を日本語に置き換えてメッセージを上書きする
	registerTranslation := func(tag string, msg string) {
		Validator.RegisterTranslation(tag, Trans, func(ut ut.Translator) error {
			return ut.Add(tag, msg, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, translateFieldName(fe.Field()), fe.Param())
			return t
		})
	}

	registerTranslation("required", "{0}は必須項目です。")
	registerTranslation("min", "{0}は{1}以上で入力してください。")
	registerTranslation("max", "{0}は{1}文字以下で入力してください。")
}

func translateFieldName(field string) string {
	if translated, ok := fieldNameTranslations[field]; ok {
		return translated
	}
	return field
}

// ValidateRequest は構造体を検証し、失敗した場合は最初のエラーを AppError にして返します。
func ValidateRequest(req interface{}) error {
	err := Validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(Trans),
			firstErr.Field(), // エラーが発生したフィールド (jsonタグ名)
			model.ErrInvalidInput,
		)
	}
	// InvalidValidationError など、バリデーションライブラリ自体のエラー
	return err
}
