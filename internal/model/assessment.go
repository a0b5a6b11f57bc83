package model

import "strings"

// Domain 固定的学科领域，构建期确定的封闭集合
type Domain string

const (
	DomainDSA Domain = "dsa" // 数据结构与算法
	DomainOS  Domain = "os"  // 操作系统
	DomainCN  Domain = "cn"  // 计算机网络
)

// Domains 返回全部领域，顺序固定
func Domains() []Domain {
	return []Domain{DomainDSA, DomainOS, DomainCN}
}

func (d Domain) Valid() bool {
	switch d {
	case DomainDSA, DomainOS, DomainCN:
		return true
	}
	return false
}

func (d Domain) DisplayName() string {
	switch d {
	case DomainDSA:
		return "Data Structures & Algorithms"
	case DomainOS:
		return "Operating Systems"
	case DomainCN:
		return "Computer Networks"
	}
	return string(d)
}

// Question 测评题目，Keywords 是评分的唯一依据
type Question struct {
	ID       string   `json:"id"`
	Domain   Domain   `json:"domain"`
	Prompt   string   `json:"prompt"`
	Keywords []string `json:"-"`
}

// AnswerSet 题目ID到自由文本回答的映射，允许缺失
type AnswerSet map[string]string

// Answered 某题是否给出了非空白回答
func (a AnswerSet) Answered(questionID string) bool {
	return strings.TrimSpace(a[questionID]) != ""
}

// ScoreResult 每个领域的熟练度 [0,100]；无题目的领域直接缺失，不补0
type ScoreResult map[Domain]int

// WeakAreas 薄弱领域及其对应的主题集合
type WeakAreas struct {
	Domains []Domain `json:"weakDomains"`
	Topics  []string `json:"weakTopics"`
}

func (w WeakAreas) HasDomain(d Domain) bool {
	for _, wd := range w.Domains {
		if wd == d {
			return true
		}
	}
	return false
}
