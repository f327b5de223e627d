package main

import (
	"log"
	"os"

	"github.com/siherrmann/vnextract"
	"github.com/siherrmann/vnextract/core/pipeline"
	"github.com/siherrmann/vnextract/model"
)

const sentence = "Nguyễn Văn A ( Nam ) là giám đốc Công ty TNHH ABC tại Hà Nội vào ngày hôm qua ( tức 10 tháng 5 năm 2023 ), hiện đang là bệnh nhân BN002 tại bệnh viện Ung bướu Trung ương, biểu hiện ho, sốt cao, đang được điều trị tại khoa Hồi sức số 1, được vận chuyển bằng xe cứu thương."

func main() {
	e, err := vnextract.NewExtractor(model.DefaultConfig(), nil, nil)
	if err != nil {
		log.Fatalf("Failed to create extractor: %v", err)
	}
	defer e.Close()

	// Downloads the model on first run, configured by VNEXTRACT_MODEL_* variables
	if err := e.UseDefaultPipeline(nil); err != nil {
		log.Fatalf("Failed to set up pipeline: %v", err)
	}

	result, err := e.Tag(sentence)
	if err != nil {
		log.Fatalf("Failed to tag sentence: %v", err)
	}

	// One "word -> tag" line per word, then the normalized dates
	if err := pipeline.WriteTagged(os.Stdout, result); err != nil {
		log.Fatalf("Failed to print tags: %v", err)
	}
}
