package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCompare_OverlapMeasure 测试重叠度量的精确数值
func TestCompare_OverlapMeasure(t *testing.T) {
	a := []string{"cough", "fever"}
	b := []string{"cough"}

	// |a|=2, frequency(cough,b)=1, frequency(fever,b)=0
	assert.Equal(t, 3, Compare(a, b))

	// 反方向不对称
	assert.Equal(t, 2, Compare(b, a))
}

// TestCompare_EmptyLeft 空 a 恒为 0
func TestCompare_EmptyLeft(t *testing.T) {
	assert.Equal(t, 0, Compare(nil, []int{1, 2, 3}))
	assert.Equal(t, 0, Compare([]int{}, nil))
}

// TestCompare_NotReflexive 相同非空多重集不为零
func TestCompare_NotReflexive(t *testing.T) {
	s := []int{1, 2, 2}

	// len=3, freq(1)=1, freq(2)=2, freq(2)=2 → 3+1+2+2
	assert.Equal(t, 8, Compare(s, s))
}

// TestCompare_Identity 展开式与定义一致
func TestCompare_Identity(t *testing.T) {
	a := []int{4, 4, 5, 9}
	b := []int{4, 5, 5, 5}

	want := len(a)
	for _, x := range a {
		want += Frequency(b, x)
	}
	assert.Equal(t, want, Compare(a, b))
}

// TestFrequency 测试出现次数统计
func TestFrequency(t *testing.T) {
	s := []string{"a", "b", "a", "a"}

	assert.Equal(t, 3, Frequency(s, "a"))
	assert.Equal(t, 1, Frequency(s, "b"))
	assert.Equal(t, 0, Frequency(s, "c"))
	assert.Equal(t, 0, Frequency[string](nil, "a"))
}

// TestOccurrences 测试出现次数映射
func TestOccurrences(t *testing.T) {
	counts := Occurrences([]int{7, 7, 3})

	assert.Equal(t, map[int]int{7: 2, 3: 1}, counts)
	assert.Empty(t, Occurrences[int](nil))
}

// TestMinMaxOccurring 测试按出现次数归约
func TestMinMaxOccurring(t *testing.T) {
	s := []string{"cough", "fever", "cough"}

	minE, ok := MinOccurring(s)
	assert.True(t, ok)
	assert.Equal(t, "fever", minE)

	maxE, ok := MaxOccurring(s)
	assert.True(t, ok)
	assert.Equal(t, "cough", maxE)

	_, ok = MinOccurring[string](nil)
	assert.False(t, ok)
	_, ok = MaxOccurring[string](nil)
	assert.False(t, ok)
}

// TestUnionIntersection 测试并集与交集
func TestUnionIntersection(t *testing.T) {
	a := []int{1, 2, 2, 3}
	b := []int{2, 3, 4}

	assert.ElementsMatch(t, []int{1, 2, 3, 4}, Union(a, b))
	assert.ElementsMatch(t, []int{2, 3}, Intersection(a, b))
	assert.Empty(t, Intersection(a, nil))
}

// TestSortedKeys 测试键排序
func TestSortedKeys(t *testing.T) {
	m := map[int]string{3: "c", 1: "a", 2: "b"}
	assert.Equal(t, []int{1, 2, 3}, SortedKeys(m))
}
