package database

import (
	"reflect"
	"testing"
)

func TestParseOrder(t *testing.T) {
	if parseOrder("single,order:-1") != -1 {
		t.Error("tag chứa order:-1 phải trả về -1")
	}
	if parseOrder("single") != 1 {
		t.Error("tag không có order phải mặc định 1")
	}
}

func TestParseIndexTag(t *testing.T) {
	configs := parseIndexTag("unique,sparse;text")

	if len(configs) != 2 {
		t.Fatalf("muốn 2 cấu hình index, nhận được %d", len(configs))
	}
	if _, ok := configs[0]["unique"]; !ok {
		t.Error("cấu hình đầu phải có unique")
	}
	if _, ok := configs[0]["sparse"]; !ok {
		t.Error("cấu hình đầu phải có sparse")
	}
	if _, ok := configs[1]["text"]; !ok {
		t.Error("cấu hình thứ hai phải có text")
	}
}

func TestParseIndexTag_TTLValue(t *testing.T) {
	configs := parseIndexTag("ttl:3600")
	if len(configs) != 1 {
		t.Fatalf("muốn 1 cấu hình, nhận được %d", len(configs))
	}
	if configs[0]["ttl"] != "3600" {
		t.Errorf("giá trị ttl phải là 3600, nhận được %q", configs[0]["ttl"])
	}
}

func TestBsonFieldName(t *testing.T) {
	type sample struct {
		Name    string `bson:"name,omitempty"`
		Skipped string `bson:"-"`
		NoTag   string
	}

	typ := reflect.TypeOf(sample{})

	if got := bsonFieldName(typ.Field(0)); got != "name" {
		t.Errorf("phải bỏ option omitempty, nhận được %q", got)
	}
	if got := bsonFieldName(typ.Field(1)); got != "" {
		t.Errorf("tag '-' phải trả về rỗng, nhận được %q", got)
	}
	if got := bsonFieldName(typ.Field(2)); got != "" {
		t.Errorf("field không có tag phải trả về rỗng, nhận được %q", got)
	}
}
