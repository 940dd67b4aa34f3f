package listview

import "strings"

// Ellipsis 页码窗口里的折叠占位
const Ellipsis = -1

// CategoryAll 分类过滤关闭时的取值
const CategoryAll = "all"

// Config 某类实体的列表行为：可搜索字段、分类字段、固定前置过滤
type Config[T any] struct {
	SearchFields func(T) []string
	CategoryOf   func(T) string
	Include      func(T) bool // 为 nil 时不做前置过滤
	PageSize     int
}

// Controller 持有一份集合快照，在内存里做过滤和分页。
// 过滤条件变化时当前页回到 1；翻页不会改变过滤结果。
type Controller[T any] struct {
	cfg      Config[T]
	items    []T
	filtered []T
	query    string
	category string
	page     int
}

// View 当前可见页
type View[T any] struct {
	Items         []T   `json:"items"`
	FilteredCount int   `json:"filtered_count"`
	PageCount     int   `json:"page_count"`
	Page          int   `json:"page"`
	Window        []int `json:"page_window"`
}

func New[T any](items []T, cfg Config[T]) *Controller[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	c := &Controller[T]{
		cfg:      cfg,
		items:    items,
		category: CategoryAll,
		page:     1,
	}
	c.refilter()
	return c
}

func (c *Controller[T]) refilter() {
	q := strings.ToLower(strings.TrimSpace(c.query))
	out := make([]T, 0, len(c.items))
	for _, it := range c.items {
		if c.cfg.Include != nil && !c.cfg.Include(it) {
			continue
		}
		if q != "" && !anyFieldContains(c.cfg.SearchFields(it), q) {
			continue
		}
		if c.category != "" && c.category != CategoryAll {
			if c.cfg.CategoryOf == nil || !strings.EqualFold(c.cfg.CategoryOf(it), c.category) {
				continue
			}
		}
		out = append(out, it)
	}
	c.filtered = out
}

func anyFieldContains(fields []string, q string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SetItems 替换快照（管理动作成功后本地补丁走这里），回到第 1 页
func (c *Controller[T]) SetItems(items []T) {
	c.items = items
	c.page = 1
	c.refilter()
}

func (c *Controller[T]) SetQuery(q string) {
	if q == c.query {
		return
	}
	c.query = q
	c.page = 1
	c.refilter()
}

func (c *Controller[T]) SetCategory(cat string) {
	if cat == "" {
		cat = CategoryAll
	}
	if cat == c.category {
		return
	}
	c.category = cat
	c.page = 1
	c.refilter()
}

func (c *Controller[T]) Page() int { return c.page }

func (c *Controller[T]) FilteredCount() int { return len(c.filtered) }

// PageCount 空结果时为 0
func (c *Controller[T]) PageCount() int {
	n := len(c.filtered)
	if n == 0 {
		return 0
	}
	return (n + c.cfg.PageSize - 1) / c.cfg.PageSize
}

// GoToPage 不做钳制，调用方需保证 n 在 [1, PageCount] 内
func (c *Controller[T]) GoToPage(n int) {
	c.page = n
}

// NextPage 已在末页时不动
func (c *Controller[T]) NextPage() {
	if c.page < c.PageCount() {
		c.page++
	}
}

// PrevPage 已在首页时不动
func (c *Controller[T]) PrevPage() {
	if c.page > 1 {
		c.page--
	}
}

// Visible 当前页切片
func (c *Controller[T]) Visible() []T {
	start := (c.page - 1) * c.cfg.PageSize
	if start >= len(c.filtered) {
		return nil
	}
	end := start + c.cfg.PageSize
	if end > len(c.filtered) {
		end = len(c.filtered)
	}
	return c.filtered[start:end]
}

func (c *Controller[T]) View() View[T] {
	return View[T]{
		Items:         c.Visible(),
		FilteredCount: c.FilteredCount(),
		PageCount:     c.PageCount(),
		Page:          c.page,
		Window:        PageWindow(c.page, c.PageCount()),
	}
}

// PageWindow 紧凑分页控件用的页码序列：始终含首尾页，
// 距当前页 2 以内的页码展开，其余折叠为 Ellipsis（在 current±3 处落一个）
func PageWindow(current, pageCount int) []int {
	var out []int
	for p := 1; p <= pageCount; p++ {
		show := p == 1 || p == pageCount || abs(p-current) <= 2
		if !show {
			if p == current-3 || p == current+3 {
				out = append(out, Ellipsis)
			}
			continue
		}
		out = append(out, p)
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
