package core

// ViewEncapsulation represents the encapsulation strategy for component styles
type ViewEncapsulation int

const (
	ViewEncapsulationEmulated ViewEncapsulation = iota
	ViewEncapsulationNone
	ViewEncapsulationShadowDom
)

// ChangeDetectionStrategy represents the change detection strategy
type ChangeDetectionStrategy int

const (
	ChangeDetectionStrategyDefault ChangeDetectionStrategy = iota
	ChangeDetectionStrategyOnPush
)

// LifecycleHooks enumerates the lifecycle hooks a directive or pipe may implement
type LifecycleHooks int

const (
	LifecycleHooksOnInit LifecycleHooks = iota
	LifecycleHooksOnDestroy
	LifecycleHooksDoCheck
	LifecycleHooksOnChanges
	LifecycleHooksAfterContentInit
	LifecycleHooksAfterContentChecked
	LifecycleHooksAfterViewInit
	LifecycleHooksAfterViewChecked
)

// LifecycleHooksValues is the canonical ordered set of lifecycle hooks.
// Hook sets on resolved metadata follow this order.
var LifecycleHooksValues = []LifecycleHooks{
	LifecycleHooksOnInit,
	LifecycleHooksOnDestroy,
	LifecycleHooksDoCheck,
	LifecycleHooksOnChanges,
	LifecycleHooksAfterContentInit,
	LifecycleHooksAfterContentChecked,
	LifecycleHooksAfterViewInit,
	LifecycleHooksAfterViewChecked,
}

var lifecycleHookNames = map[LifecycleHooks]string{
	LifecycleHooksOnInit:              "OnInit",
	LifecycleHooksOnDestroy:           "OnDestroy",
	LifecycleHooksDoCheck:             "DoCheck",
	LifecycleHooksOnChanges:           "OnChanges",
	LifecycleHooksAfterContentInit:    "AfterContentInit",
	LifecycleHooksAfterContentChecked: "AfterContentChecked",
	LifecycleHooksAfterViewInit:       "AfterViewInit",
	LifecycleHooksAfterViewChecked:    "AfterViewChecked",
}

func (h LifecycleHooks) String() string {
	if name, ok := lifecycleHookNames[h]; ok {
		return name
	}
	return "Unknown"
}

// LifecycleHookByName resolves a hook name back to its enum value.
func LifecycleHookByName(name string) (LifecycleHooks, bool) {
	for hook, hookName := range lifecycleHookNames {
		if hookName == name {
			return hook, true
		}
	}
	return 0, false
}
