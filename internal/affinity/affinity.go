// Package affinity 提供标签重合度原语。信息流排序、发布推荐和广播定向
// 都基于同一个匹配数：两个标签集合交集的大小。
package affinity

// MatchCount 返回两个标签 ID 集合交集的基数。入参按集合处理，
// 重复元素只计一次；交换入参结果不变。
func MatchCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	n := 0
	seen := make(map[string]struct{}, len(b))
	for _, id := range b {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := set[id]; ok {
			n++
		}
	}
	return n
}
