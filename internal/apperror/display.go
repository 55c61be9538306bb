package apperror

import (
	"errors"
	"fmt"
)

// MissingInputMessage is shown when the action is triggered without a file.
const MissingInputMessage = "⚠️ الرجاء رفع ملف صوتي أولاً."

const processingFailedFormat = "حدث خطأ أثناء المعالجة: %s"

var displayFormats = map[Kind]string{
	KindInvalidInput:        "⚠️ مدخلات غير صالحة: %s",
	KindInvalidAudioFormat:  "⚠️ ملف صوتي غير صالح: %s",
	KindTranscriptionFailed: "حدث خطأ أثناء تحويل الصوت إلى نص: %s",
	KindSummarizationFailed: "حدث خطأ أثناء تلخيص الاجتماع: %s",
	KindConfiguration:       "خطأ في الإعدادات: %s",
	KindUnknown:             processingFailedFormat,
}

// Display maps err to the localized string returned in the transcript slot.
// The underlying message is embedded so the user sees what went wrong.
func Display(err error) string {
	if err == nil {
		return ""
	}

	kind := KindOf(err)
	if kind == KindMissingInput {
		return MissingInputMessage
	}

	format, ok := displayFormats[kind]
	if !ok {
		format = processingFailedFormat
	}
	return fmt.Sprintf(format, detail(err))
}

func detail(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Cause != nil {
		return appErr.Cause.Error()
	}
	if appErr != nil && appErr.Message != "" {
		return appErr.Message
	}
	return err.Error()
}
