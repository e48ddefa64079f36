package mock

import (
	"math"
	"strconv"
)

// Xorshift32 是可复现的伪随机源，同一个种子和同样的调用顺序总是得到同样的序列。
// 不是并发安全的，只应在启动时的单个 goroutine 中使用。
type Xorshift32 struct {
	state uint32
}

// NewXorshift32 的种子不能为 0，0 是 xorshift 的不动点
func NewXorshift32(seed uint32) *Xorshift32 {
	if seed == 0 {
		panic("mock: xorshift32 seed must be non-zero")
	}
	return &Xorshift32{state: seed}
}

// Next 返回 [0, 1) 之间的浮点数，精度为 0.001
func (r *Xorshift32) Next() float64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return float64(x%1000) / 1000
}

func (r *Xorshift32) Intn(n int) int {
	return int(math.Floor(r.Next()*float64(n))) % n
}

func (r *Xorshift32) Digit() string {
	return strconv.Itoa(r.Intn(10))
}

// Phone 生成 11 位手机号：1 + [3-8] + 9 位随机数字
//
// 号段后多取的一位数字会多消耗一次随机数，之后所有人员的字段都依赖这一点，
// 改动它会改变同一种子生成的全部数据
func (r *Xorshift32) Phone() string {
	prefix := "1" + strconv.Itoa(3+int(math.Floor(r.Next()*6))) + r.Digit()

	mid := ""
	for i := 0; i < 4; i++ {
		mid += r.Digit()
	}

	tail := ""
	for i := 0; i < 4; i++ {
		tail += r.Digit()
	}

	return prefix + mid + tail
}

// Pick 从 pool 中选一个元素，pool 为空属于调用方的编程错误
func Pick[T any](r *Xorshift32, pool []T) T {
	if len(pool) == 0 {
		panic("mock: pick from empty pool")
	}
	return pool[r.Intn(len(pool))]
}
