package metrics

import "mission-computer/internal/config"

// Labels holds the display text for one output language.
type Labels struct {
	InfoHeader string
	LoadHeader string
	InfoError  string
	LoadError  string
	Fields     map[Field]string
}

var englishLabels = Labels{
	InfoHeader: "--- Mission Computer System Info ---",
	LoadHeader: "--- Mission Computer Load ---",
	InfoError:  "System info query error",
	LoadError:  "System load query error",
	Fields: map[Field]string{
		FieldOS:                 string(FieldOS),
		FieldOSVersion:          string(FieldOSVersion),
		FieldCPUType:            string(FieldCPUType),
		FieldCPUCores:           string(FieldCPUCores),
		FieldMemorySizeGB:       string(FieldMemorySizeGB),
		FieldCPUUsagePercent:    string(FieldCPUUsagePercent),
		FieldMemoryUsagePercent: string(FieldMemoryUsagePercent),
	},
}

var koreanLabels = Labels{
	InfoHeader: "--- 미션 컴퓨터 시스템 정보 ---",
	LoadHeader: "--- 미션 컴퓨터 부하 상태 ---",
	InfoError:  "시스템 정보 조회 에러",
	LoadError:  "시스템 부하 조회 에러",
	Fields: map[Field]string{
		FieldOS:                 "운영체계",
		FieldOSVersion:          "운영체계_버전",
		FieldCPUType:            "CPU_타입",
		FieldCPUCores:           "CPU_코어_수",
		FieldMemorySizeGB:       "메모리_크기_GB",
		FieldCPUUsagePercent:    "CPU_실시간_사용량_%",
		FieldMemoryUsagePercent: "메모리_실시간_사용량_%",
	},
}

// LabelsFor returns the label set for language, defaulting to English.
func LabelsFor(language string) Labels {
	if language == config.LanguageKorean {
		return koreanLabels
	}
	return englishLabels
}

func (l Labels) field(f Field) string {
	if label, ok := l.Fields[f]; ok {
		return label
	}
	return string(f)
}
