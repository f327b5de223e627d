package main

import (
	"log"
	"os"

	"github.com/siherrmann/vnextract"
	"github.com/siherrmann/vnextract/model"
)

const contractDocument = `
HỢP ĐỒNG MUA BÁN XE Ô TÔ

Bên A: Công ty TNHH Thương Mại XYZ
MST: 0312345678
Địa chỉ: Số 123 Đường Lê Lợi, Quận 1, TP.HCM
Điện thoại: 028 3823 4567
Email: contact@xyzcompany.vn
Website: https://xyzcompany.vn

Bên B: Ông Nguyễn Văn A
CCCD: 025123456789
Địa chỉ: 45/12 Nguyễn Du, Quận 3
SĐT: 0912345678
Email: nguyenvana@gmail.com

THÔNG TIN XE:
Biển số: 51A-12345
Số khung: 1HGCM82633A123456
Số máy: ABC123456789
Ngày đăng ký: 15/08/2020

THANH TOÁN:
Số tiền: 850.000.000 VND
STK: 1234567890 tại Ngân hàng ABC
Số thẻ: 1234 5678 9012 3456

Mã hợp đồng: HD202300123
Ngày ký: 20/10/2023
`

func main() {
	e, err := vnextract.NewExtractor(model.DefaultConfig(), nil, nil)
	if err != nil {
		log.Fatalf("Failed to create extractor: %v", err)
	}
	defer e.Close()

	// Recognize entities with the built-in catalog
	doc, err := e.Annotate(contractDocument)
	if err != nil {
		log.Fatalf("Failed to annotate document: %v", err)
	}

	// Print the document followed by its entities grouped by category
	if err := e.Report(os.Stdout, doc); err != nil {
		log.Fatalf("Failed to print report: %v", err)
	}
}
